// Package index owns the three lookup tables the rest of the resolution
// pipeline reads from: file path -> file id, module path -> file id, and
// module path -> {symbol name -> node id}.
package index

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/duyhunghd6/codegraph/model"
	"github.com/duyhunghd6/codegraph/pathmodule"
)

// reverseLookupCacheSize bounds the memoized file-path -> module-path cache.
// Every symbol resolution needs this reverse lookup, so a generously sized
// cache keeps it effectively O(1) without retaining it forever for projects
// indexed once and discarded.
const reverseLookupCacheSize = 4096

// ValidationError is a structural-inconsistency finding: unexpected, but
// never fatal to the build.
type ValidationError struct {
	Kind    string // "duplicate_module" | "orphaned_export" | "orphaned_module"
	Message string
}

func (e ValidationError) Error() string { return e.Kind + ": " + e.Message }

// GlobalIndex owns file_map, module_map and export_map for a single repo
// build. It is built once, then treated as read-only by the Module
// Resolver, Symbol Resolver and Graph Builder.
type GlobalIndex struct {
	RepoRoot string

	fileMap   map[string]string            // abs path -> file id
	moduleMap map[string]string            // dotted module -> file id
	exportMap map[string]map[string]string // dotted module -> {symbol -> node id}

	// fileIDModule memoizes the reverse lookup file id -> module path,
	// filled in alongside moduleMap during phase A of Build.
	fileIDModule map[string]string

	// pathModuleCache memoizes pathmodule.ToModulePath per file path,
	// independent of whether the file id has been registered yet. A file
	// whose module path lost a duplicate_module collision still caches
	// that path here, although moduleMap points it at the other file.
	pathModuleCache *lru.Cache[string, string]

	errors []ValidationError
}

// New creates an empty GlobalIndex rooted at repoRoot.
func New(repoRoot string) *GlobalIndex {
	cache, _ := lru.New[string, string](reverseLookupCacheSize)
	return &GlobalIndex{
		RepoRoot:        repoRoot,
		fileMap:         make(map[string]string),
		moduleMap:       make(map[string]string),
		exportMap:       make(map[string]map[string]string),
		fileIDModule:    make(map[string]string),
		pathModuleCache: cache,
	}
}

// Build ingests entities in two phases: files first (so module paths
// exist), then classes and functions (which attach to a file's module).
func (idx *GlobalIndex) Build(entities []model.CodeElement) {
	// Phase A: files only.
	for i := range entities {
		e := &entities[i]
		if e.Kind != model.KindFile {
			continue
		}
		idx.fileMap[e.FilePath] = e.ID

		modulePath, ok := idx.modulePathFor(e.FilePath)
		if !ok {
			continue
		}
		if existing, dup := idx.moduleMap[modulePath]; dup && existing != e.ID {
			idx.errors = append(idx.errors, ValidationError{
				Kind:    "duplicate_module",
				Message: "module " + modulePath + " claimed by both " + existing + " and " + e.ID,
			})
			continue
		}
		idx.moduleMap[modulePath] = e.ID
		idx.fileIDModule[e.ID] = modulePath
	}

	// Phase B: classes and functions.
	for i := range entities {
		e := &entities[i]
		if e.Kind != model.KindClass && e.Kind != model.KindFunction {
			continue
		}
		modulePath, ok := idx.ModulePathOfFile(e.FilePath)
		if !ok {
			idx.errors = append(idx.errors, ValidationError{
				Kind:    "orphaned_export",
				Message: "entity " + e.ID + " has no owning module for file " + e.FilePath,
			})
			continue
		}

		exports, exists := idx.exportMap[modulePath]
		if !exists {
			exports = make(map[string]string)
			idx.exportMap[modulePath] = exports
		}
		exports[e.Name] = e.ID

		if e.IsMethod() {
			exports[e.Function.ClassName+"."+e.Name] = e.ID
		}
	}
}

// modulePathFor computes the module path for a file path without relying
// on moduleMap yet (used while still populating it in phase A).
func (idx *GlobalIndex) modulePathFor(filePath string) (string, bool) {
	if cached, ok := idx.pathModuleCache.Get(filePath); ok {
		return cached, cached != ""
	}
	modulePath, ok := pathmodule.ToModulePath(filePath, idx.RepoRoot)
	if ok {
		idx.pathModuleCache.Add(filePath, modulePath)
	} else {
		idx.pathModuleCache.Add(filePath, "")
	}
	return modulePath, ok
}

// ModulePathOfFile is the memoized reverse lookup file path -> module
// path, keyed here by file path rather than file id since that's what
// entities carry directly.
func (idx *GlobalIndex) ModulePathOfFile(filePath string) (string, bool) {
	return idx.modulePathFor(filePath)
}

// FileIDByPath looks up a file's id by its absolute path.
func (idx *GlobalIndex) FileIDByPath(absPath string) (string, bool) {
	id, ok := idx.fileMap[absPath]
	return id, ok
}

// FileIDByModule looks up a file's id by its dotted module path.
func (idx *GlobalIndex) FileIDByModule(modulePath string) (string, bool) {
	id, ok := idx.moduleMap[modulePath]
	return id, ok
}

// ExportedSymbol looks up a node id by module path and symbol name.
func (idx *GlobalIndex) ExportedSymbol(modulePath, symbol string) (string, bool) {
	exports, ok := idx.exportMap[modulePath]
	if !ok {
		return "", false
	}
	id, ok := exports[symbol]
	return id, ok
}

// ModuleExports returns the full export table for a module, nil if none.
func (idx *GlobalIndex) ModuleExports(modulePath string) map[string]string {
	return idx.exportMap[modulePath]
}

// FileIDToModulePath returns the module path owning a given file id,
// using the memoized map built during Build.
func (idx *GlobalIndex) FileIDToModulePath(fileID string) (string, bool) {
	m, ok := idx.fileIDModule[fileID]
	return m, ok
}

// Errors returns the validation errors accumulated during Build.
func (idx *GlobalIndex) Errors() []ValidationError {
	return idx.errors
}

// Validate checks structural invariants that Build's errors don't already
// cover: every module_map target must appear in file_map's values.
func (idx *GlobalIndex) Validate() []ValidationError {
	errs := append([]ValidationError(nil), idx.errors...)

	fileIDs := make(map[string]bool, len(idx.fileMap))
	for _, id := range idx.fileMap {
		fileIDs[id] = true
	}
	for modulePath, fileID := range idx.moduleMap {
		if !fileIDs[fileID] {
			errs = append(errs, ValidationError{
				Kind:    "orphaned_module",
				Message: "module " + modulePath + " targets unknown file id " + fileID,
			})
		}
	}
	return errs
}

// Stats reports aggregate counts for end-user reporting.
type Stats struct {
	Files           int
	Modules         int
	SymbolsExported int
}

// FileMap returns a copy of the file path -> file id table, for snapshot
// persistence.
func (idx *GlobalIndex) FileMap() map[string]string {
	out := make(map[string]string, len(idx.fileMap))
	for k, v := range idx.fileMap {
		out[k] = v
	}
	return out
}

// ModuleMap returns a copy of the module path -> file id table, for
// snapshot persistence.
func (idx *GlobalIndex) ModuleMap() map[string]string {
	out := make(map[string]string, len(idx.moduleMap))
	for k, v := range idx.moduleMap {
		out[k] = v
	}
	return out
}

// ExportMap returns a copy of the module path -> {symbol -> node id}
// table, for snapshot persistence.
func (idx *GlobalIndex) ExportMap() map[string]map[string]string {
	out := make(map[string]map[string]string, len(idx.exportMap))
	for module, exports := range idx.exportMap {
		inner := make(map[string]string, len(exports))
		for sym, id := range exports {
			inner[sym] = id
		}
		out[module] = inner
	}
	return out
}

// Restore rebuilds a GlobalIndex directly from previously persisted
// tables, bypassing Build. Used when rehydrating a snapshot, where the
// original CodeElement list used to derive these tables is no longer
// walked.
func Restore(repoRoot string, fileMap, moduleMap map[string]string, exportMap map[string]map[string]string) *GlobalIndex {
	idx := New(repoRoot)
	for path, id := range fileMap {
		idx.fileMap[path] = id
	}
	for module, id := range moduleMap {
		idx.moduleMap[module] = id
		idx.fileIDModule[id] = module
	}
	for module, exports := range exportMap {
		inner := make(map[string]string, len(exports))
		for sym, id := range exports {
			inner[sym] = id
		}
		idx.exportMap[module] = inner
	}
	return idx
}

// Stats summarizes the index's current contents.
func (idx *GlobalIndex) Stats() Stats {
	symbols := 0
	for _, exports := range idx.exportMap {
		symbols += len(exports)
	}
	return Stats{
		Files:           len(idx.fileMap),
		Modules:         len(idx.moduleMap),
		SymbolsExported: symbols,
	}
}
