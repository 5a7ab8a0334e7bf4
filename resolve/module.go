// Package resolve implements the Module Resolver (C3) and Symbol Resolver
// (C4). Both hold only a read-only view of the index; neither mutates it.
package resolve

import (
	"strings"

	"github.com/duyhunghd6/codegraph/index"
)

// ModuleResolver resolves an import record (absolute or relative, with
// the package/module asymmetry) to a file id.
type ModuleResolver struct {
	idx *index.GlobalIndex
}

// NewModuleResolver builds a resolver backed by idx.
func NewModuleResolver(idx *index.GlobalIndex) *ModuleResolver {
	return &ModuleResolver{idx: idx}
}

// Resolve resolves importName relative to currentModule. level is the
// number of leading dots (0 = absolute). isPackage is true iff the file
// doing the importing is a package-initializer file.
//
// Absolute imports look importName up directly in the module map; a miss
// means a third-party module and yields no file id. Relative imports
// strip one extra segment from currentModule for non-package files: the
// single dot refers to pkg both inside pkg/__init__ (module "pkg", nothing
// stripped) and inside pkg/mod (module "pkg.mod", last segment stripped).
func (r *ModuleResolver) Resolve(currentModule, importName string, level int, isPackage bool) (string, bool) {
	if level == 0 {
		if importName == "" {
			return "", false
		}
		return r.idx.FileIDByModule(importName)
	}

	segments := splitModule(currentModule)

	strip := level
	if isPackage {
		strip = level - 1
	}
	if strip > len(segments) {
		return "", false
	}

	parent := segments[:len(segments)-strip]

	var target []string
	if importName != "" {
		target = append(append([]string{}, parent...), strings.Split(importName, ".")...)
	} else {
		target = parent
	}

	if len(target) == 0 {
		return "", false
	}

	return r.idx.FileIDByModule(strings.Join(target, "."))
}

func splitModule(modulePath string) []string {
	if modulePath == "" {
		return nil
	}
	return strings.Split(modulePath, ".")
}
