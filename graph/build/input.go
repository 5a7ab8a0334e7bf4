package build

import "github.com/duyhunghd6/codegraph/model"

// Input is everything the graph builder needs for one repo build: the
// flat entity list plus the per-file records the external parser
// produced.
type Input struct {
	RepoRoot    string
	Entities    []model.CodeElement
	Imports     map[string][]model.ImportRecord // file path -> imports
	Calls       map[string][]model.CallRecord   // file path -> call sites
	Assignments map[string]model.AssignmentMap  // file path -> scope_id -> var -> candidate classes
}
