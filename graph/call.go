package graph

import "github.com/duyhunghd6/codegraph/model"

// CallGraph is the caller -> callee graph. Nodes are functions, methods,
// classes, and files acting as callers.
type CallGraph struct {
	Nodes map[string]Node
	Edges []CallEdge

	// seen deduplicates edges per (from, to, callName) so repeated calls
	// to the same callee from the same scope don't produce duplicate
	// edges.
	seen map[[3]string]bool
}

func newCallGraph() *CallGraph {
	return &CallGraph{Nodes: make(map[string]Node), seen: make(map[[3]string]bool)}
}

// AddNode registers a function, method, class or file node acting as a
// caller or callee. Other kinds are rejected.
func (g *CallGraph) AddNode(n Node) bool {
	switch n.Kind {
	case model.KindFunction, model.KindClass, model.KindFile:
		g.Nodes[n.ID] = n
		return true
	default:
		return false
	}
}

// AddEdge adds a call edge, rejecting unregistered endpoints, self-loops,
// cross-repo pairs, and duplicates.
func (g *CallGraph) AddEdge(e CallEdge) bool {
	from, fromOK := g.Nodes[e.From]
	to, toOK := g.Nodes[e.To]
	if !fromOK || !toOK {
		return false
	}
	if e.From == e.To {
		return false
	}
	if from.RepoName != to.RepoName {
		return false
	}

	key := [3]string{e.From, e.To, e.CallName}
	if g.seen[key] {
		return false
	}
	g.seen[key] = true

	g.Edges = append(g.Edges, e)
	return true
}
