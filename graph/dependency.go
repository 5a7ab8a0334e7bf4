package graph

import "github.com/duyhunghd6/codegraph/model"

// DependencyGraph is the file -> file import graph. Nodes are files only;
// edges are rejected on self-import or cross-repo mismatch.
type DependencyGraph struct {
	Nodes map[string]Node
	Edges []DependencyEdge
}

func newDependencyGraph() *DependencyGraph {
	return &DependencyGraph{Nodes: make(map[string]Node)}
}

// AddNode registers a file node. Non-file kinds are rejected.
func (g *DependencyGraph) AddNode(n Node) bool {
	if n.Kind != model.KindFile {
		return false
	}
	g.Nodes[n.ID] = n
	return true
}

// AddEdge adds a dependency edge, rejecting a self-loop or a cross-repo
// pair. Both endpoints must already be registered nodes.
func (g *DependencyGraph) AddEdge(e DependencyEdge) bool {
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
