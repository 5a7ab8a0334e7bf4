package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/duyhunghd6/codegraph/snapshot"
)

const buildFixture = `{
  "repo_root": "/repo",
  "entities": [
    {"id": "f1", "kind": "file", "name": "main.py", "file_path": "/repo/main.py", "relative_path": "main.py", "repo_name": "repo"},
    {"id": "c1", "kind": "class", "name": "Base", "file_path": "/repo/main.py", "relative_path": "main.py", "repo_name": "repo"}
  ],
  "imports": {},
  "calls": {},
  "assignments": {}
}`

func TestBuildCmdRegistration(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"build"})
	assert.NoError(t, err)
	assert.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("input"))
}

// newBuildTestCmd builds a standalone command carrying the same flags as
// buildCmd, so runBuild can be exercised without going through rootCmd's
// PersistentPreRun (which touches the real analytics env file).
func newBuildTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "build"}
	cmd.Flags().StringArray("input", nil, "")
	cmd.Flags().String("out", "", "")
	cmd.Flags().String("config", filepath.Join(os.TempDir(), "nonexistent-codegraph.yaml"), "")
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().Bool("debug", false, "")
	return cmd
}

func TestRunBuild_WritesSnapshot(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "elements.json")
	assert.NoError(t, os.WriteFile(inputPath, []byte(buildFixture), 0o644))
	outPath := filepath.Join(dir, "snapshot.bin")

	cmd := newBuildTestCmd()
	assert.NoError(t, cmd.Flags().Set("input", inputPath))
	assert.NoError(t, cmd.Flags().Set("out", outPath))

	err := runBuild(cmd, nil)
	assert.NoError(t, err)
	assert.FileExists(t, outPath)

	snap, err := snapshot.Load(outPath)
	assert.NoError(t, err)
	assert.Equal(t, "/repo", snap.RepoRoot)
	assert.Equal(t, 1, snap.Index.Stats().Files)
}

func TestRunBuild_RequiresInput(t *testing.T) {
	cmd := newBuildTestCmd()
	err := runBuild(cmd, nil)
	assert.Error(t, err)
}

func TestRunBuild_MergesMultipleRepos(t *testing.T) {
	dir := t.TempDir()

	repoA := filepath.Join(dir, "a.json")
	repoB := filepath.Join(dir, "b.json")
	assert.NoError(t, os.WriteFile(repoA, []byte(`{"repo_root":"/a","entities":[{"id":"fa","kind":"file","name":"a.py","file_path":"/a/a.py","relative_path":"a.py","repo_name":"a"}],"imports":{},"calls":{},"assignments":{}}`), 0o644))
	assert.NoError(t, os.WriteFile(repoB, []byte(`{"repo_root":"/b","entities":[{"id":"fb","kind":"file","name":"b.py","file_path":"/b/b.py","relative_path":"b.py","repo_name":"b"}],"imports":{},"calls":{},"assignments":{}}`), 0o644))

	outPath := filepath.Join(dir, "merged.bin")
	cmd := newBuildTestCmd()
	assert.NoError(t, cmd.Flags().Set("input", repoA))
	assert.NoError(t, cmd.Flags().Set("input", repoB))
	assert.NoError(t, cmd.Flags().Set("out", outPath))

	assert.NoError(t, runBuild(cmd, nil))

	snap, err := snapshot.Load(outPath)
	assert.NoError(t, err)
	assert.Len(t, snap.ByID, 2)
}
