// Package graph holds the three output graphs the engine produces: a
// file-level dependency graph, a class-level inheritance graph, and a
// call graph over functions, methods, classes and files.
package graph

import "github.com/duyhunghd6/codegraph/model"

// Node is a graph vertex, keyed by CodeElement id.
type Node struct {
	ID       string
	Kind     model.Kind
	Name     string
	RepoName string
}

// DependencyEdge connects an importer file to an imported file.
type DependencyEdge struct {
	From, To   string
	Module     string
	Level      int
	Resolution string // "resolver" | "fallback"
}

// InheritanceEdge connects a subclass to a superclass.
type InheritanceEdge struct {
	From, To string
	BaseName string
}

// CallEdge connects a caller (function, method, class or file) to a
// callee (function, method or class).
type CallEdge struct {
	From, To string
	CallName string
	CallType model.CallType
	FilePath string
	NodeText string
}

// Graphs bundles the three output graphs for a single build.
type Graphs struct {
	Dependency  *DependencyGraph
	Inheritance *InheritanceGraph
	Call        *CallGraph
}

// New creates three empty, appended-only graphs.
func New() *Graphs {
	return &Graphs{
		Dependency:  newDependencyGraph(),
		Inheritance: newInheritanceGraph(),
		Call:        newCallGraph(),
	}
}
