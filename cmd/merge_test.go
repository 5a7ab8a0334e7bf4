package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/duyhunghd6/codegraph/graph"
	"github.com/duyhunghd6/codegraph/index"
	"github.com/duyhunghd6/codegraph/model"
	"github.com/duyhunghd6/codegraph/snapshot"
)

func TestMergeCmdRegistration(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"merge"})
	assert.NoError(t, err)
	assert.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("into"))
	assert.NotNil(t, cmd.Flags().Lookup("from"))
}

func newMergeTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "merge"}
	cmd.Flags().String("into", "", "")
	cmd.Flags().StringArray("from", nil, "")
	return cmd
}

func writeSnapshotFixture(t *testing.T, path, repoRoot, elementID string) {
	t.Helper()
	entity := model.CodeElement{
		ID: elementID, Kind: model.KindFile, Name: "main.py",
		FilePath: repoRoot + "/main.py", RelativePath: "main.py", RepoName: filepath.Base(repoRoot),
	}

	idx := index.New(repoRoot)
	idx.Build([]model.CodeElement{entity})

	graphs := graph.New()
	graphs.Dependency.AddNode(graph.Node{ID: elementID, Kind: model.KindFile, Name: "main.py", RepoName: filepath.Base(repoRoot)})

	snap := snapshot.New(repoRoot, idx, graphs, []model.CodeElement{entity}, nil)
	assert.NoError(t, snapshot.Save(path, snap))
}

func TestRunMerge_UnionsTwoSnapshots(t *testing.T) {
	dir := t.TempDir()
	intoPath := filepath.Join(dir, "into.bin")
	fromPath := filepath.Join(dir, "from.bin")

	writeSnapshotFixture(t, intoPath, "/repo-a", "a1")
	writeSnapshotFixture(t, fromPath, "/repo-b", "b1")

	cmd := newMergeTestCmd()
	assert.NoError(t, cmd.Flags().Set("into", intoPath))
	assert.NoError(t, cmd.Flags().Set("from", fromPath))

	assert.NoError(t, runMerge(cmd, nil))

	merged, err := snapshot.Load(intoPath)
	assert.NoError(t, err)
	assert.Len(t, merged.ByID, 2)
	assert.Contains(t, merged.ByID, "a1")
	assert.Contains(t, merged.ByID, "b1")
}

func TestRunMerge_RequiresFlags(t *testing.T) {
	cmd := newMergeTestCmd()
	assert.Error(t, runMerge(cmd, nil))
}

func TestRunMerge_MissingIntoFileErrors(t *testing.T) {
	dir := t.TempDir()
	cmd := newMergeTestCmd()
	assert.NoError(t, cmd.Flags().Set("into", filepath.Join(dir, "missing.bin")))
	assert.NoError(t, cmd.Flags().Set("from", filepath.Join(dir, "missing2.bin")))

	err := runMerge(cmd, nil)
	assert.Error(t, err)
}
