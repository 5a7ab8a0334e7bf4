// Package model defines the data shapes the resolution engine consumes.
// These are produced by an external parser; this package only describes
// the contract, it never parses source text.
package model

import (
	"crypto/sha256"
	"encoding/hex"
)

// Kind discriminates the four entity shapes the engine understands.
type Kind string

const (
	KindFile          Kind = "file"
	KindClass         Kind = "class"
	KindFunction      Kind = "function"
	KindDocumentation Kind = "documentation"
)

// FileMetadata holds the metadata attached to a file-kind element.
type FileMetadata struct {
	Imports []ImportRecord
}

// ClassMetadata holds the metadata attached to a class-kind element.
type ClassMetadata struct {
	// Bases are the textual base-class names as they appear in source,
	// unresolved.
	Bases []string
}

// FunctionMetadata holds the metadata attached to a function-kind element.
// A function is a method when ClassName is non-empty.
type FunctionMetadata struct {
	ClassName  string
	Parameters []string
}

// CodeElement is a tagged union over {file, class, function, documentation}.
// Only the metadata field matching Kind is populated; callers must check
// Kind before dereferencing the kind-specific pointer.
type CodeElement struct {
	ID           string
	Kind         Kind
	Name         string
	FilePath     string
	RelativePath string
	RepoName     string

	File     *FileMetadata
	Class    *ClassMetadata
	Function *FunctionMetadata
}

// IsMethod reports whether a function-kind element is a class method.
func (e *CodeElement) IsMethod() bool {
	return e.Kind == KindFunction && e.Function != nil && e.Function.ClassName != ""
}

// ImportRecord is one import clause inside a file's metadata.
//
//   - `from module import names...` → Module = "module", Names = names
//   - `from . import names...`      → Module = "", Level >= 1, Names = names
//   - `import module`               → Module = "module" (conventionally
//     also placed in Names[0] by the producer; the engine only relies on
//     Module)
//
// Level is 0 for an absolute import, k for k leading dots.
type ImportRecord struct {
	Module string
	Names  []string
	Alias  string
	Level  int
}

// CallType distinguishes a bare-name call from an attribute call.
type CallType string

const (
	CallSimple    CallType = "simple"
	CallAttribute CallType = "attribute"
)

// CallRecord is a single call site inside a file.
type CallRecord struct {
	CallName   string
	CallType   CallType
	BaseObject string
	// ScopeID is "kind::name" of the smallest enclosing definition, or ""
	// at module scope.
	ScopeID  string
	NodeText string
}

// AssignmentMap maps scope_id -> variable name -> candidate class names,
// as produced for a single file. The pseudo-scope "global" carries
// module-level assignments and "function::__init__" carries self.*
// assignments.
type AssignmentMap map[string]map[string][]string

// ElementID derives a stable, globally-unique id for an entity. Equal
// inputs always yield equal ids.
func ElementID(repo, kind, path, qualifiedName string) string {
	sum := sha256.Sum256([]byte(repo + "\x00" + path + "\x00" + qualifiedName))
	return repo + "_" + kind + "_" + hex.EncodeToString(sum[:8])
}
