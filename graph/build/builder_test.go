package build

import (
	"testing"

	"github.com/duyhunghd6/codegraph/model"
)

func fileEl(repo, path string) model.CodeElement {
	return model.CodeElement{ID: model.ElementID(repo, "file", path, path), Kind: model.KindFile, FilePath: path, RepoName: repo, File: &model.FileMetadata{}}
}

func classEl(repo, path, name string, bases ...string) model.CodeElement {
	return model.CodeElement{ID: model.ElementID(repo, "class", path, name), Kind: model.KindClass, Name: name, FilePath: path, RepoName: repo, Class: &model.ClassMetadata{Bases: bases}}
}

func methodEl(repo, path, class, name string) model.CodeElement {
	return model.CodeElement{ID: model.ElementID(repo, "function", path, class+"."+name), Kind: model.KindFunction, Name: name, FilePath: path, RepoName: repo, Function: &model.FunctionMetadata{ClassName: class}}
}

func funcEl(repo, path, name string) model.CodeElement {
	return model.CodeElement{ID: model.ElementID(repo, "function", path, name), Kind: model.KindFunction, Name: name, FilePath: path, RepoName: repo, Function: &model.FunctionMetadata{}}
}

func TestBuild_AbsoluteImport(t *testing.T) {
	bFile, cFile := "/project/a/b.py", "/project/a/c.py"
	in := Input{
		RepoRoot: "/project",
		Entities: []model.CodeElement{
			fileEl("r1", bFile),
			fileEl("r1", cFile),
			funcEl("r1", cFile, "f"),
		},
		Imports: map[string][]model.ImportRecord{
			bFile: {{Module: "a.c", Names: []string{"f"}, Level: 0}},
		},
	}
	res := Build(in, nil)

	bID, _ := res.Index.FileIDByPath(bFile)
	cID, _ := res.Index.FileIDByPath(cFile)

	found := false
	for _, e := range res.Graphs.Dependency.Edges {
		if e.From == bID && e.To == cID {
			found = true
			if e.Resolution != "resolver" || e.Level != 0 || e.Module != "a.c" {
				t.Fatalf("unexpected edge attrs: %+v", e)
			}
		}
	}
	if !found {
		t.Fatal("expected dependency edge a/b.py -> a/c.py")
	}
}

// TestBuild_RelativeImportFromPackage is end-to-end scenario 2.
func TestBuild_RelativeImportFromPackage(t *testing.T) {
	initFile, utilFile := "/project/pkg/__init__.py", "/project/pkg/util.py"
	in := Input{
		RepoRoot: "/project",
		Entities: []model.CodeElement{
			fileEl("r1", initFile),
			fileEl("r1", utilFile),
		},
		Imports: map[string][]model.ImportRecord{
			initFile: {{Module: "", Names: []string{"util"}, Level: 1}},
		},
	}
	res := Build(in, nil)

	initID, _ := res.Index.FileIDByPath(initFile)
	utilID, _ := res.Index.FileIDByPath(utilFile)

	found := false
	for _, e := range res.Graphs.Dependency.Edges {
		if e.From == initID && e.To == utilID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected dependency edge pkg/__init__.py -> pkg/util.py")
	}
}

// TestBuild_CrossFileInheritance is end-to-end scenario 3.
func TestBuild_CrossFileInheritance(t *testing.T) {
	mFile, nFile := "/project/m.py", "/project/n.py"
	in := Input{
		RepoRoot: "/project",
		Entities: []model.CodeElement{
			fileEl("r1", mFile),
			classEl("r1", mFile, "Base"),
			fileEl("r1", nFile),
			classEl("r1", nFile, "Child", "Base"),
		},
		Imports: map[string][]model.ImportRecord{
			nFile: {{Module: "m", Names: []string{"Base"}, Level: 0}},
		},
	}
	res := Build(in, nil)

	childID := model.ElementID("r1", "class", nFile, "Child")
	baseID := model.ElementID("r1", "class", mFile, "Base")

	found := false
	for _, e := range res.Graphs.Inheritance.Edges {
		if e.From == childID && e.To == baseID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected inheritance edge Child -> Base")
	}
}

// TestBuild_SelfMethodCall is end-to-end scenario 4.
func TestBuild_SelfMethodCall(t *testing.T) {
	xFile := "/project/x.py"
	in := Input{
		RepoRoot: "/project",
		Entities: []model.CodeElement{
			fileEl("r1", xFile),
			classEl("r1", xFile, "A"),
			methodEl("r1", xFile, "A", "f"),
			methodEl("r1", xFile, "A", "g"),
		},
		Calls: map[string][]model.CallRecord{
			xFile: {{CallName: "g", CallType: model.CallAttribute, BaseObject: "self", ScopeID: "function::f"}},
		},
	}
	res := Build(in, nil)

	fID := model.ElementID("r1", "function", xFile, "A.f")
	gID := model.ElementID("r1", "function", xFile, "A.g")

	found := false
	for _, e := range res.Graphs.Call.Edges {
		if e.From == fID && e.To == gID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected call edge A.f -> A.g")
	}
}

// TestBuild_InstanceMethodWithTypeInference is end-to-end scenario 5.
func TestBuild_InstanceMethodWithTypeInference(t *testing.T) {
	yFile := "/project/y.py"
	in := Input{
		RepoRoot: "/project",
		Entities: []model.CodeElement{
			fileEl("r1", yFile),
			classEl("r1", yFile, "L"),
			methodEl("r1", yFile, "L", "load"),
			classEl("r1", yFile, "S"),
			methodEl("r1", yFile, "S", "__init__"),
			methodEl("r1", yFile, "S", "run"),
		},
		Calls: map[string][]model.CallRecord{
			yFile: {{CallName: "load", CallType: model.CallAttribute, BaseObject: "loader", ScopeID: "function::run"}},
		},
		Assignments: map[string]model.AssignmentMap{
			yFile: {"function::__init__": {"loader": {"L"}}},
		},
	}
	res := Build(in, nil)

	runID := model.ElementID("r1", "function", yFile, "S.run")
	loadID := model.ElementID("r1", "function", yFile, "L.load")

	found := false
	for _, e := range res.Graphs.Call.Edges {
		if e.From == runID && e.To == loadID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected call edge S.run -> L.load")
	}
}

// TestBuild_ModuleShadowing is end-to-end scenario 6 and property P8.
func TestBuild_ModuleShadowing(t *testing.T) {
	zFile := "/project/z.py"
	in := Input{
		RepoRoot: "/project",
		Entities: []model.CodeElement{
			fileEl("r1", zFile),
			classEl("r1", zFile, "Svc"),
			methodEl("r1", zFile, "Svc", "call"),
			funcEl("r1", zFile, "h"),
		},
		Imports: map[string][]model.ImportRecord{
			zFile: {{Module: "service", Names: []string{"service"}, Level: 0}},
		},
		Calls: map[string][]model.CallRecord{
			zFile: {{CallName: "call", CallType: model.CallAttribute, BaseObject: "service", ScopeID: "function::h"}},
		},
		Assignments: map[string]model.AssignmentMap{
			zFile: {"function::h": {"service": {"Svc"}}},
		},
	}
	res := Build(in, nil)

	hID := model.ElementID("r1", "function", zFile, "h")
	callID := model.ElementID("r1", "function", zFile, "Svc.call")

	found := false
	for _, e := range res.Graphs.Call.Edges {
		if e.From == hID && e.To == callID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the local variable to shadow the module import: h -> Svc.call")
	}
}

// TestBuild_CrossRepoIsolation is end-to-end scenario 7 and property P1.
func TestBuild_CrossRepoIsolation(t *testing.T) {
	repo1Util := "/repo1/util.py"
	repo1Main := "/repo1/main.py"
	repo2Util := "/repo2/util.py"
	repo2Main := "/repo2/main.py"

	in := Input{
		RepoRoot: "/",
		Entities: []model.CodeElement{
			fileEl("repo1", repo1Util),
			fileEl("repo1", repo1Main),
			fileEl("repo2", repo2Util),
			fileEl("repo2", repo2Main),
		},
		Imports: map[string][]model.ImportRecord{
			repo1Main: {{Module: "repo1.util", Level: 0}},
			repo2Main: {{Module: "repo2.util", Level: 0}},
		},
	}
	res := Build(in, nil)

	for _, e := range res.Graphs.Dependency.Edges {
		fromRepo := res.Graphs.Dependency.Nodes[e.From].RepoName
		toRepo := res.Graphs.Dependency.Nodes[e.To].RepoName
		if fromRepo != toRepo {
			t.Fatalf("found cross-repo edge: %s (%s) -> %s (%s)", e.From, fromRepo, e.To, toRepo)
		}
	}
	if len(res.Graphs.Dependency.Edges) != 2 {
		t.Fatalf("expected 2 intra-repo edges, got %d", len(res.Graphs.Dependency.Edges))
	}
}
