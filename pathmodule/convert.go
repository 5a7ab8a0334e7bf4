// Package pathmodule converts filesystem paths into dotted module paths
// and back. It is the deterministic base every other resolution component
// builds on (C1 in the design).
package pathmodule

import (
	"path/filepath"
	"strings"
)

// sourceExt is the extension the converter treats as an indexable source
// file. The language this engine targets uses a single source extension,
// matched case-insensitively so Windows-style casing doesn't break lookups.
const sourceExt = ".py"

// packageInitStem is the filename stem (without extension) that marks a
// package-initializer file, e.g. "pkg/__init__.py".
const packageInitStem = "__init__"

// invalidSegmentChars are rejected anywhere in a module segment.
const invalidSegmentChars = `<>:"|?*`

// ToModulePath converts filePath into a dotted module path relative to
// repoRoot. It returns ("", false) when filePath is not a strict
// descendant of repoRoot, isn't a recognized source file, or reduces to
// an empty module (a repo-root __init__ file).
//
// The function is pure and platform-stable: forward-slash and backslash
// input denoting the same path yield identical output.
func ToModulePath(filePath, repoRoot string) (string, bool) {
	file := normalize(filePath)
	root := normalize(repoRoot)

	if !isStrictDescendant(file, root) {
		return "", false
	}

	if !strings.HasSuffix(file, sourceExt) {
		return "", false
	}

	rel := strings.TrimPrefix(file, root)
	rel = strings.TrimPrefix(rel, "/")
	rel = strings.TrimSuffix(rel, sourceExt)

	dotted := strings.ReplaceAll(rel, "/", ".")
	dotted = strings.TrimPrefix(dotted, ".")

	if strings.HasSuffix(dotted, packageInitStem) {
		dotted = strings.TrimSuffix(dotted, packageInitStem)
		dotted = strings.TrimSuffix(dotted, ".")
	}

	if dotted == "" {
		return "", false
	}

	for _, seg := range strings.Split(dotted, ".") {
		if strings.ContainsAny(seg, invalidSegmentChars) {
			return "", false
		}
	}

	return dotted, true
}

// IsPackageFile reports whether filePath is a package-initializer file
// (the language's `__init__` convention), which receives special
// treatment when resolving relative imports.
func IsPackageFile(filePath string) bool {
	base := filepath.Base(normalize(filePath))
	base = strings.TrimSuffix(base, sourceExt)
	return base == packageInitStem
}

// normalize folds a path to a platform-stable absolute, forward-slash,
// case-folded form for comparison. It assumes the input is already
// absolute (the caller, typically the ingestion layer, is responsible for
// resolving relative inputs against a known working directory).
func normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.ToLower(p)
	p = strings.TrimSuffix(p, "/")
	return p
}

// isStrictDescendant reports whether file lies strictly inside root (file
// must not equal root).
func isStrictDescendant(file, root string) bool {
	if file == root {
		return false
	}
	return strings.HasPrefix(file, root+"/")
}
