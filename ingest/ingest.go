// Package ingest loads a single repo's pre-parsed entities, imports,
// calls and assignments from a JSON document shaped like an external
// parser's output contract. The engine itself never parses source text;
// this is the seam where a real parser would plug in.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/duyhunghd6/codegraph/graph/build"
	"github.com/duyhunghd6/codegraph/model"
)

// document is the on-disk JSON shape.
type document struct {
	RepoRoot    string                         `json:"repo_root"`
	Entities    []entityDTO                    `json:"entities"`
	Imports     map[string][]importDTO         `json:"imports"`
	Calls       map[string][]callDTO           `json:"calls"`
	Assignments map[string]map[string]map[string][]string `json:"assignments"`
}

type entityDTO struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	FilePath     string `json:"file_path"`
	RelativePath string `json:"relative_path"`
	RepoName     string `json:"repo_name"`

	Bases      []string `json:"bases,omitempty"`
	ClassName  string   `json:"class_name,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
}

type importDTO struct {
	Module string   `json:"module"`
	Names  []string `json:"names"`
	Alias  string   `json:"alias"`
	Level  int      `json:"level"`
}

type callDTO struct {
	CallName   string `json:"call_name"`
	CallType   string `json:"call_type"`
	BaseObject string `json:"base_object"`
	ScopeID    string `json:"scope_id"`
	NodeText   string `json:"node_text"`
}

// Load reads path as a JSON document and converts it into a build.Input
// ready for the graph builder. It returns an error for a missing or
// malformed file; per-entity structural problems are left for
// index.GlobalIndex.Validate to report instead of failing the whole load.
func Load(path string) (build.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return build.Input{}, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return build.Input{}, fmt.Errorf("ingest: decode %s: %w", path, err)
	}

	return toInput(doc), nil
}

func toInput(doc document) build.Input {
	entities := make([]model.CodeElement, 0, len(doc.Entities))
	for _, e := range doc.Entities {
		entities = append(entities, toCodeElement(e))
	}

	imports := make(map[string][]model.ImportRecord, len(doc.Imports))
	for path, records := range doc.Imports {
		list := make([]model.ImportRecord, 0, len(records))
		for _, r := range records {
			list = append(list, model.ImportRecord{
				Module: r.Module,
				Names:  r.Names,
				Alias:  r.Alias,
				Level:  r.Level,
			})
		}
		imports[path] = list
	}

	calls := make(map[string][]model.CallRecord, len(doc.Calls))
	for path, records := range doc.Calls {
		list := make([]model.CallRecord, 0, len(records))
		for _, r := range records {
			list = append(list, model.CallRecord{
				CallName:   r.CallName,
				CallType:   model.CallType(r.CallType),
				BaseObject: r.BaseObject,
				ScopeID:    r.ScopeID,
				NodeText:   r.NodeText,
			})
		}
		calls[path] = list
	}

	assignments := make(map[string]model.AssignmentMap, len(doc.Assignments))
	for path, scopes := range doc.Assignments {
		am := make(model.AssignmentMap, len(scopes))
		for scopeID, vars := range scopes {
			am[scopeID] = vars
		}
		assignments[path] = am
	}

	return build.Input{
		RepoRoot:    doc.RepoRoot,
		Entities:    entities,
		Imports:     imports,
		Calls:       calls,
		Assignments: assignments,
	}
}

func toCodeElement(e entityDTO) model.CodeElement {
	el := model.CodeElement{
		ID:           e.ID,
		Kind:         model.Kind(e.Kind),
		Name:         e.Name,
		FilePath:     e.FilePath,
		RelativePath: e.RelativePath,
		RepoName:     e.RepoName,
	}
	switch el.Kind {
	case model.KindFile:
		el.File = &model.FileMetadata{}
	case model.KindClass:
		el.Class = &model.ClassMetadata{Bases: e.Bases}
	case model.KindFunction:
		el.Function = &model.FunctionMetadata{ClassName: e.ClassName, Parameters: e.Parameters}
	}
	return el
}
