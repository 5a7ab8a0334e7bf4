package snapshot

import "github.com/duyhunghd6/codegraph/model"

// Merge folds src into dst in place: graph nodes and edges are unioned
// (nodes by id; dependency and inheritance edges by (from, to), call
// edges by (from, to, call name) through CallGraph.AddEdge), fileImports are
// unioned per file path, and any src element whose id is not already
// present in dst.ByID is inserted. ByName is never used as a uniqueness
// key — src elements are always appended to dst.ByName's slice for their
// name, duplicates and all, since a name can legitimately collide across
// repos.
func Merge(dst, src *Snapshot) error {
	mergeDependency(dst, src)
	mergeInheritance(dst, src)
	mergeCall(dst, src)
	mergeElements(dst, src)
	mergeFileImports(dst, src)
	return nil
}

func mergeDependency(dst, src *Snapshot) {
	for _, n := range src.Graphs.Dependency.Nodes {
		dst.Graphs.Dependency.AddNode(n)
	}
	seen := make(map[[2]string]bool, len(dst.Graphs.Dependency.Edges))
	for _, e := range dst.Graphs.Dependency.Edges {
		seen[[2]string{e.From, e.To}] = true
	}
	for _, e := range src.Graphs.Dependency.Edges {
		key := [2]string{e.From, e.To}
		if seen[key] {
			continue
		}
		if dst.Graphs.Dependency.AddEdge(e) {
			seen[key] = true
		}
	}
}

func mergeInheritance(dst, src *Snapshot) {
	for _, n := range src.Graphs.Inheritance.Nodes {
		dst.Graphs.Inheritance.AddNode(n)
	}
	seen := make(map[[2]string]bool, len(dst.Graphs.Inheritance.Edges))
	for _, e := range dst.Graphs.Inheritance.Edges {
		seen[[2]string{e.From, e.To}] = true
	}
	for _, e := range src.Graphs.Inheritance.Edges {
		key := [2]string{e.From, e.To}
		if seen[key] {
			continue
		}
		if dst.Graphs.Inheritance.AddEdge(e) {
			seen[key] = true
		}
	}
}

func mergeCall(dst, src *Snapshot) {
	for _, n := range src.Graphs.Call.Nodes {
		dst.Graphs.Call.AddNode(n)
	}
	for _, e := range src.Graphs.Call.Edges {
		dst.Graphs.Call.AddEdge(e)
	}
}

// mergeElements inserts every src element whose id is new to dst, keyed
// by id only.
func mergeElements(dst, src *Snapshot) {
	if dst.ByID == nil {
		dst.ByID = make(map[string]model.CodeElement, len(src.ByID))
	}
	if dst.ByName == nil {
		dst.ByName = make(map[string][]model.CodeElement)
	}
	for id, e := range src.ByID {
		if _, exists := dst.ByID[id]; exists {
			continue
		}
		dst.ByID[id] = e
		dst.ByName[e.Name] = append(dst.ByName[e.Name], e)
	}
}

func mergeFileImports(dst, src *Snapshot) {
	if dst.FileImports == nil {
		dst.FileImports = make(map[string][]model.ImportRecord, len(src.FileImports))
	}
	for path, imports := range src.FileImports {
		if _, exists := dst.FileImports[path]; exists {
			continue
		}
		dst.FileImports[path] = imports
	}
}
