package graph

import "github.com/duyhunghd6/codegraph/model"

// InheritanceGraph is the subclass -> superclass graph. Nodes added at
// build time are classes only.
type InheritanceGraph struct {
	Nodes map[string]Node
	Edges []InheritanceEdge
}

func newInheritanceGraph() *InheritanceGraph {
	return &InheritanceGraph{Nodes: make(map[string]Node)}
}

// AddNode registers a class node. Non-class kinds are rejected.
func (g *InheritanceGraph) AddNode(n Node) bool {
	if n.Kind != model.KindClass {
		return false
	}
	g.Nodes[n.ID] = n
	return true
}

// AddEdge adds an inheritance edge, rejecting self-loops and cross-repo
// pairs.
func (g *InheritanceGraph) AddEdge(e InheritanceEdge) bool {
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
	g.Edges = append(g.Edges, e)
	return true
}
