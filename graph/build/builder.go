package build

import (
	"github.com/duyhunghd6/codegraph/graph"
	"github.com/duyhunghd6/codegraph/index"
	"github.com/duyhunghd6/codegraph/model"
	"github.com/duyhunghd6/codegraph/pathmodule"
	"github.com/duyhunghd6/codegraph/resolve"
)

// Logger is the minimal sink the builder writes resolution-miss and
// structural-inconsistency diagnostics to. output.Logger satisfies this
// without the build package importing it.
type Logger interface {
	Debug(format string, args ...interface{})
	Warning(format string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Debug(string, ...interface{})   {}
func (nullLogger) Warning(string, ...interface{}) {}

// Result bundles everything a single repo build produced.
type Result struct {
	Index  *index.GlobalIndex
	Graphs *graph.Graphs
}

// Build runs the full indexing and resolution pipeline over in: it builds
// the global index, wires the module and symbol resolvers, and emits the
// three graphs. logger may be nil, in which case diagnostics are
// discarded.
func Build(in Input, logger Logger) *Result {
	if logger == nil {
		logger = nullLogger{}
	}

	idx := index.New(in.RepoRoot)
	idx.Build(in.Entities)

	modules := resolve.NewModuleResolver(idx)
	symbols := resolve.NewSymbolResolver(idx, modules)

	graphs := graph.New()
	lk := buildLookups(in.Entities)

	addNodes(graphs, in.Entities)

	b := &builder{
		in:      in,
		idx:     idx,
		modules: modules,
		symbols: symbols,
		graphs:  graphs,
		lk:      lk,
		log:     logger,
	}

	b.buildDependencyEdges()
	b.buildInheritanceEdges()
	b.buildCallEdges()

	return &Result{Index: idx, Graphs: graphs}
}

// builder carries the shared state the three edge-building passes read.
type builder struct {
	in      Input
	idx     *index.GlobalIndex
	modules *resolve.ModuleResolver
	symbols *resolve.SymbolResolver
	graphs  *graph.Graphs
	lk      *lookups
	log     Logger
}

// addNodes registers every entity into whichever graph(s) its kind
// belongs in, as enforced again inside each graph's AddNode.
func addNodes(graphs *graph.Graphs, entities []model.CodeElement) {
	for _, e := range entities {
		n := graph.Node{ID: e.ID, Kind: e.Kind, Name: e.Name, RepoName: e.RepoName}
		switch e.Kind {
		case model.KindFile:
			graphs.Dependency.AddNode(n)
			graphs.Call.AddNode(n)
		case model.KindClass:
			graphs.Inheritance.AddNode(n)
			graphs.Call.AddNode(n)
		case model.KindFunction:
			graphs.Call.AddNode(n)
		}
	}
}

// isPackageFileFor reports whether filePath is a package-initializer file.
func isPackageFileFor(filePath string) bool {
	return pathmodule.IsPackageFile(filePath)
}
