package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duyhunghd6/codegraph/analytics"
	"github.com/duyhunghd6/codegraph/snapshot"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge another snapshot's graphs into one",
	Long: `Load the --into snapshot and one or more --from snapshots, union their
graph nodes and edges, and write the result back to --into's path.

Merging is additive: an element already present by id is never
overwritten, a dependency or inheritance edge whose endpoints are already
linked in --into is not added again, and a call edge is skipped when the
same caller, callee and call name are already present. The --into
snapshot's repo root and index tables are kept as they are.`,
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, _ []string) error {
	into, _ := cmd.Flags().GetString("into")
	from, _ := cmd.Flags().GetStringArray("from")

	if into == "" || len(from) == 0 {
		return fmt.Errorf("--into and at least one --from are required")
	}

	analytics.ReportEvent(analytics.MergeStarted)

	dst, err := snapshot.Load(into)
	if err != nil {
		analytics.ReportEvent(analytics.MergeFailed)
		return fmt.Errorf("merge: load %s: %w", into, err)
	}

	for _, path := range from {
		src, err := snapshot.Load(path)
		if err != nil {
			analytics.ReportEvent(analytics.MergeFailed)
			return fmt.Errorf("merge: load %s: %w", path, err)
		}
		if err := snapshot.Merge(dst, src); err != nil {
			analytics.ReportEvent(analytics.MergeFailed)
			return fmt.Errorf("merge: %s into %s: %w", path, into, err)
		}
	}

	if err := snapshot.Save(into, dst); err != nil {
		analytics.ReportEvent(analytics.MergeFailed)
		return fmt.Errorf("merge: save %s: %w", into, err)
	}

	analytics.ReportEventWithProperties(analytics.MergeCompleted, map[string]interface{}{
		"sources": len(from),
	})
	return nil
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().String("into", "", "Snapshot to merge into and overwrite")
	mergeCmd.Flags().StringArray("from", nil, "Snapshot(s) to merge in (repeatable)")
	mergeCmd.MarkFlagRequired("into")
	mergeCmd.MarkFlagRequired("from")
}
