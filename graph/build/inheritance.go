package build

import (
	"github.com/duyhunghd6/codegraph/graph"
	"github.com/duyhunghd6/codegraph/model"
)

// buildInheritanceEdges resolves each class's textual base names to a
// defining class, falling back to a same-repo name match when the
// symbol resolver misses.
func (b *builder) buildInheritanceEdges() {
	for _, e := range b.in.Entities {
		if e.Kind != model.KindClass || e.Class == nil {
			continue
		}
		isPackage := isPackageFileFor(e.FilePath)
		imports := b.in.Imports[e.FilePath]
		fileID, hasFile := b.idx.FileIDByPath(e.FilePath)
		if !hasFile {
			continue
		}

		for _, baseName := range e.Class.Bases {
			baseID, ok := b.symbols.Resolve(baseName, fileID, imports, isPackage)
			if !ok {
				baseID, ok = b.fallbackBaseByName(baseName, e.RepoName)
			}
			if !ok {
				b.log.Debug("inheritance: unresolved base %q for class %s", baseName, e.ID)
				continue
			}
			added := b.graphs.Inheritance.AddEdge(graph.InheritanceEdge{
				From:     e.ID,
				To:       baseID,
				BaseName: baseName,
			})
			if !added {
				b.log.Debug("inheritance: rejected edge %s -> %s (self-inherit or cross-repo)", e.ID, baseID)
			}
		}
	}
}

// fallbackBaseByName picks the first same-repo class sharing baseName,
// favoring recall over precision. Never crosses repos.
func (b *builder) fallbackBaseByName(baseName, repoName string) (string, bool) {
	for _, cand := range b.lk.classesByName[baseName] {
		if cand.RepoName == repoName {
			return cand.ID, true
		}
	}
	return "", false
}
