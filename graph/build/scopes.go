// Package build implements the graph builder: it consumes entities plus
// call/assignment records and produces the three output graphs,
// delegating import and symbol resolution to pathmodule/index/resolve.
package build

import (
	"strings"

	"github.com/duyhunghd6/codegraph/model"
)

// lookups bundles the precomputed, linear-time indices the builder needs
// before it can walk entities and emit edges.
type lookups struct {
	byID map[string]model.CodeElement

	// scopeLookup maps (filePath, "kind::name") -> node id, for every
	// function/method/class entity.
	scopeLookup map[string]string

	// classesByName maps a class's short name to every class entity
	// sharing that name, for the inheritance fallback step.
	classesByName map[string][]model.CodeElement

	// methodByFileClassName maps filePath\x00className\x00methodName to
	// a method's node id, for the instance-method resolution fallback
	// (step d) that looks a method up structurally rather than through
	// import visibility.
	methodByFileClassName map[string]string
}

func buildLookups(entities []model.CodeElement) *lookups {
	l := &lookups{
		byID:                  make(map[string]model.CodeElement, len(entities)),
		scopeLookup:           make(map[string]string),
		classesByName:         make(map[string][]model.CodeElement),
		methodByFileClassName: make(map[string]string),
	}

	for _, e := range entities {
		l.byID[e.ID] = e

		switch e.Kind {
		case model.KindClass:
			l.scopeLookup[scopeKey(e.FilePath, "class", e.Name)] = e.ID
			l.classesByName[e.Name] = append(l.classesByName[e.Name], e)
		case model.KindFunction:
			l.scopeLookup[scopeKey(e.FilePath, "function", e.Name)] = e.ID
			if e.IsMethod() {
				l.methodByFileClassName[methodKey(e.FilePath, e.Function.ClassName, e.Name)] = e.ID
			}
		}
	}

	return l
}

func scopeKey(filePath, kind, name string) string {
	return filePath + "\x00" + kind + "::" + name
}

func methodKey(filePath, className, methodName string) string {
	return filePath + "\x00" + className + "\x00" + methodName
}

// resolveCallerID parses scopeID as "kind::name" and looks it up in
// scopeLookup scoped to filePath; on miss, malformed input, or a null
// scope, the caller degrades to the file entity itself.
func (l *lookups) resolveCallerID(filePath, fileID, scopeID string) string {
	if scopeID == "" {
		return fileID
	}
	parts := strings.SplitN(scopeID, "::", 2)
	if len(parts) != 2 {
		return fileID
	}
	if id, ok := l.scopeLookup[scopeKey(filePath, parts[0], parts[1])]; ok {
		return id
	}
	return fileID
}

// callerElement returns the CodeElement for a caller id resolved via
// resolveCallerID, or false if it isn't in the entity set (shouldn't
// happen, but the builder never trusts an id blindly).
func (l *lookups) callerElement(callerID string) (model.CodeElement, bool) {
	e, ok := l.byID[callerID]
	return e, ok
}
