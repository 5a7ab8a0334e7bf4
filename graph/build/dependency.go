package build

import (
	"github.com/duyhunghd6/codegraph/graph"
	"github.com/duyhunghd6/codegraph/model"
)

// buildDependencyEdges walks every file's imports and emits one
// dependency edge per resolved target.
func (b *builder) buildDependencyEdges() {
	for _, e := range b.in.Entities {
		if e.Kind != model.KindFile {
			continue
		}
		currentModule, ok := b.idx.FileIDToModulePath(e.ID)
		if !ok {
			continue
		}
		isPackage := isPackageFileFor(e.FilePath)

		for _, imp := range b.in.Imports[e.FilePath] {
			for _, target := range importTargets(imp) {
				fileID, ok := b.modules.Resolve(currentModule, target, imp.Level, isPackage)
				if !ok {
					b.log.Debug("dependency: unresolved import %q (level=%d) in %s", target, imp.Level, e.FilePath)
					continue
				}
				added := b.graphs.Dependency.AddEdge(graph.DependencyEdge{
					From:       e.ID,
					To:         fileID,
					Module:     imp.Module,
					Level:      imp.Level,
					Resolution: "resolver",
				})
				if !added {
					b.log.Debug("dependency: rejected edge %s -> %s (self-import or cross-repo)", e.ID, fileID)
				}
			}
		}
	}
}

// importTargets enumerates the resolution targets for one import record:
// a non-empty module name is one target; a bare relative import with a
// names list targets each listed name (`from . import a, b`); a bare
// relative import with no names targets the parent itself.
func importTargets(imp model.ImportRecord) []string {
	if imp.Module != "" {
		return []string{imp.Module}
	}
	if imp.Level > 0 && len(imp.Names) > 0 {
		return append([]string{}, imp.Names...)
	}
	if imp.Level > 0 {
		return []string{""}
	}
	return nil
}
