package build

import "github.com/duyhunghd6/codegraph/model"

// resolveInstanceMethod resolves a `self.attr.method()`-style call: given
// a call's base_object and call_name, find the candidate class name(s)
// bound to base_object, then for each candidate try, in order, a
// qualified lookup, a bare lookup, a structural scan, and finally fall
// back to the class itself (recall over precision).
func (b *builder) resolveInstanceMethod(
	call model.CallRecord,
	fileID string,
	imports []model.ImportRecord,
	assignments model.AssignmentMap,
	isPackage bool,
) []string {
	candidates := instanceCandidates(assignments, call.ScopeID, call.BaseObject)

	var results []string
	seen := make(map[string]bool)

	for _, className := range candidates {
		classID, ok := b.symbols.Resolve(className, fileID, imports, isPackage)
		if !ok {
			continue
		}

		var resolved string
		if id, ok := b.symbols.Resolve(className+"."+call.CallName, fileID, imports, isPackage); ok {
			resolved = id
		} else if id, ok := b.symbols.Resolve(call.CallName, fileID, imports, isPackage); ok {
			resolved = id
		} else if id, ok := b.structuralMethodScan(classID, className, call.CallName); ok {
			resolved = id
		} else {
			resolved = classID
		}

		if !seen[resolved] {
			seen[resolved] = true
			results = append(results, resolved)
		}
	}

	return results
}

// instanceCandidates returns the candidate class names bound to
// baseObject, checking the current scope, then __init__, then module
// scope, and stopping at the first scope with a binding.
func instanceCandidates(assignments model.AssignmentMap, scopeID, baseObject string) []string {
	for _, scope := range []string{scopeID, "function::__init__", "global"} {
		if scope == "" {
			continue
		}
		vars, ok := assignments[scope]
		if !ok {
			continue
		}
		if classes, ok := vars[baseObject]; ok && len(classes) > 0 {
			return classes
		}
	}
	return nil
}

// structuralMethodScan finds a method structurally by file path and
// class name, independent of whether it's visible through the caller's
// imports.
func (b *builder) structuralMethodScan(classID, className, methodName string) (string, bool) {
	class, ok := b.lk.callerElement(classID)
	if !ok {
		return "", false
	}
	id, ok := b.lk.methodByFileClassName[methodKey(class.FilePath, className, methodName)]
	return id, ok
}
