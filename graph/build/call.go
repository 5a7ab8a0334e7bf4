package build

import (
	"github.com/duyhunghd6/codegraph/graph"
	"github.com/duyhunghd6/codegraph/model"
)

// buildCallEdges walks every file's call records, attributes each to its
// enclosing caller, resolves the callee (possibly to several targets),
// and adds one edge per resolved target.
func (b *builder) buildCallEdges() {
	for _, e := range b.in.Entities {
		if e.Kind != model.KindFile {
			continue
		}
		fileID, ok := b.idx.FileIDByPath(e.FilePath)
		if !ok {
			continue
		}
		isPackage := isPackageFileFor(e.FilePath)
		imports := b.in.Imports[e.FilePath]
		assignments := b.in.Assignments[e.FilePath]

		for _, call := range b.in.Calls[e.FilePath] {
			callerID := b.lk.resolveCallerID(e.FilePath, fileID, call.ScopeID)

			callees := b.resolveCallees(call, fileID, callerID, imports, assignments, isPackage)
			for _, calleeID := range callees {
				added := b.graphs.Call.AddEdge(graph.CallEdge{
					From:     callerID,
					To:       calleeID,
					CallName: call.CallName,
					CallType: call.CallType,
					FilePath: e.FilePath,
					NodeText: call.NodeText,
				})
				if !added {
					b.log.Debug("call: rejected edge %s -> %s (%s)", callerID, calleeID, call.CallName)
				}
			}
			if len(callees) == 0 {
				b.log.Debug("call: unresolved call %q in %s", call.CallName, e.FilePath)
			}
		}
	}
}

// resolveCallees determines one or more callees for a single call record.
func (b *builder) resolveCallees(
	call model.CallRecord,
	fileID, callerID string,
	imports []model.ImportRecord,
	assignments model.AssignmentMap,
	isPackage bool,
) []string {
	if call.CallType == model.CallSimple || call.BaseObject == "" {
		if id, ok := b.symbols.Resolve(call.CallName, fileID, imports, isPackage); ok {
			return []string{id}
		}
		return nil
	}

	// call.CallType == attribute, call.BaseObject != ""

	if !b.isLocalVariable(assignments, call.ScopeID, call.BaseObject) {
		if moduleName, ok := b.importedModuleName(imports, call.BaseObject); ok {
			if id, ok := b.symbols.Resolve(moduleName+"."+call.CallName, fileID, imports, isPackage); ok {
				return []string{id}
			}
			return nil
		}

		if call.BaseObject == "self" || call.BaseObject == "cls" {
			if caller, ok := b.lk.callerElement(callerID); ok && caller.IsMethod() {
				class := caller.Function.ClassName
				if id, ok := b.symbols.Resolve(class+"."+call.CallName, fileID, imports, isPackage); ok {
					return []string{id}
				}
				if id, ok := b.symbols.Resolve(call.CallName, fileID, imports, isPackage); ok {
					return []string{id}
				}
				return nil
			}
		}
	}

	return b.resolveInstanceMethod(call, fileID, imports, assignments, isPackage)
}

// importedModuleName reports whether base_object names a module imported
// by this file (`import service`), returning that module's own name.
func (b *builder) importedModuleName(imports []model.ImportRecord, baseObject string) (string, bool) {
	for _, imp := range imports {
		if imp.Module == baseObject {
			return imp.Module, true
		}
	}
	return "", false
}

// isLocalVariable reports whether base_object is bound as a local
// variable under the call's scope, __init__, or module scope. A local
// binding always takes priority over an import of the same name.
func (b *builder) isLocalVariable(assignments model.AssignmentMap, scopeID, baseObject string) bool {
	for _, scope := range []string{scopeID, "function::__init__", "global"} {
		if scope == "" {
			continue
		}
		if vars, ok := assignments[scope]; ok {
			if _, ok := vars[baseObject]; ok {
				return true
			}
		}
	}
	return false
}
