package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duyhunghd6/codegraph/output"
	"github.com/duyhunghd6/codegraph/snapshot"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print aggregated statistics for a snapshot",
	Long: `Load a snapshot and print the aggregated counts produced by the
build: files indexed, modules created, symbols exported, and the size of
each of the three output graphs, plus any structural validation errors
found while indexing. Supports text, json, csv and sarif output.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, _ []string) error {
	path := cmd.Flag("snapshot").Value.String()
	if path == "" {
		return fmt.Errorf("--snapshot is required")
	}
	format, _ := cmd.Flags().GetString("format")

	snap, err := snapshot.Load(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	opts := output.NewDefaultOptions()
	opts.Format = output.OutputFormat(format)

	stats := reportStatsFor(snap)
	return output.NewReportFormatter(opts).Format(stats)
}

func reportStatsFor(snap *snapshot.Snapshot) output.ReportStats {
	return output.ReportStats{
		RepoRoot:         snap.RepoRoot,
		Index:            snap.Index.Stats(),
		DependencyEdges:  len(snap.Graphs.Dependency.Edges),
		DependencyNodes:  len(snap.Graphs.Dependency.Nodes),
		InheritanceEdges: len(snap.Graphs.Inheritance.Edges),
		InheritanceNodes: len(snap.Graphs.Inheritance.Nodes),
		CallEdges:        len(snap.Graphs.Call.Edges),
		CallNodes:        len(snap.Graphs.Call.Nodes),
		ValidationErrors: snap.Index.Validate(),
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().String("snapshot", "", "Path to a snapshot file produced by 'codegraph build'")
	reportCmd.Flags().String("format", "text", "Output format: text, json, csv or sarif")
	reportCmd.MarkFlagRequired("snapshot")
}
