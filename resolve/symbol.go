package resolve

import (
	"strings"

	"github.com/duyhunghd6/codegraph/index"
	"github.com/duyhunghd6/codegraph/model"
)

// SymbolResolver resolves a bare or dotted symbol name, in the context of
// a file's imports, to a definition node id (C4).
type SymbolResolver struct {
	idx     *index.GlobalIndex
	modules *ModuleResolver
}

// NewSymbolResolver builds a resolver backed by idx, reusing a
// ModuleResolver for the import-following step.
func NewSymbolResolver(idx *index.GlobalIndex, modules *ModuleResolver) *SymbolResolver {
	return &SymbolResolver{idx: idx, modules: modules}
}

// Resolve resolves symbol as seen from currentFileID, given that file's
// import records. The first matching strategy wins: local export, then
// each import record in order.
func (r *SymbolResolver) Resolve(symbol, currentFileID string, imports []model.ImportRecord, isPackage bool) (string, bool) {
	currentModule, ok := r.idx.FileIDToModulePath(currentFileID)
	if !ok {
		return "", false
	}

	if id, ok := r.idx.ExportedSymbol(currentModule, symbol); ok {
		return id, true
	}

	for _, imp := range imports {
		if id, ok := r.resolveViaImport(symbol, currentModule, imp, isPackage); ok {
			return id, true
		}
	}

	return "", false
}

// resolveViaImport tests whether symbol matches imp by one of four match
// rules (bare name, alias, module prefix, class-name prefix), and if so
// follows the import and fetches the target symbol from the target
// module's export table.
func (r *SymbolResolver) resolveViaImport(symbol, currentModule string, imp model.ImportRecord, isPackage bool) (string, bool) {
	// Match on a bare imported name: `from m import f`, asking for `f`.
	if containsName(imp.Names, symbol) {
		return r.fetchFromImport(currentModule, imp, imp.Level, symbol, isPackage)
	}

	// Match on the alias: `from m import f as g`, asking for `g`.
	if imp.Alias != "" && symbol == imp.Alias && len(imp.Names) == 1 {
		return r.fetchFromImport(currentModule, imp, imp.Level, imp.Names[0], isPackage)
	}

	// Match on `import pkg`, asking for `pkg.f`: the target module's own
	// export table keys its members by their bare name, so strip the
	// matched module prefix before fetching.
	if imp.Module != "" && strings.HasPrefix(symbol, imp.Module+".") {
		remainder := strings.TrimPrefix(symbol, imp.Module+".")
		return r.fetchQualified(currentModule, imp, remainder, isPackage)
	}

	// Match on `from m import C`, asking for `C.method`: fetch the
	// qualified name unmodified, since C2 stores "Class.method" entries
	// verbatim and that disambiguates between same-named methods on
	// different classes in the same module (unlike the bare name, which
	// the last-indexed class would win).
	for _, n := range imp.Names {
		if strings.HasPrefix(symbol, n+".") {
			return r.fetchQualified(currentModule, imp, symbol, isPackage)
		}
	}

	return "", false
}

// fetchFromImport follows imp to its target module and fetches fetchName
// (the original, pre-alias name) from it.
func (r *SymbolResolver) fetchFromImport(currentModule string, imp model.ImportRecord, level int, fetchName string, isPackage bool) (string, bool) {
	targetFileID, ok := r.modules.Resolve(currentModule, imp.Module, level, isPackage)
	if !ok {
		return "", false
	}
	targetModule, ok := r.idx.FileIDToModulePath(targetFileID)
	if !ok {
		return "", false
	}
	return r.idx.ExportedSymbol(targetModule, fetchName)
}

// fetchQualified follows imp to its target module and fetches lookupName
// from that module's export table.
func (r *SymbolResolver) fetchQualified(currentModule string, imp model.ImportRecord, lookupName string, isPackage bool) (string, bool) {
	targetFileID, ok := r.modules.Resolve(currentModule, imp.Module, imp.Level, isPackage)
	if !ok {
		return "", false
	}
	targetModule, ok := r.idx.FileIDToModulePath(targetFileID)
	if !ok {
		return "", false
	}
	return r.idx.ExportedSymbol(targetModule, lookupName)
}

func containsName(names []string, symbol string) bool {
	for _, n := range names {
		if n == symbol {
			return true
		}
	}
	return false
}
