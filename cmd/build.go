package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/duyhunghd6/codegraph/analytics"
	"github.com/duyhunghd6/codegraph/config"
	"github.com/duyhunghd6/codegraph/graph/build"
	"github.com/duyhunghd6/codegraph/ingest"
	"github.com/duyhunghd6/codegraph/output"
	"github.com/duyhunghd6/codegraph/snapshot"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build dependency, inheritance and call graphs from pre-parsed entities",
	Long: `Read one or more pre-parsed entity documents (one per repo), resolve
imports, base classes and call sites within each repo independently, then
merge the results into a single snapshot file.

Each --input document carries its own repo_root, so repos are built
concurrently and merged afterward; a symbol in one repo never resolves
against another.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, _ []string) error {
	inputs, _ := cmd.Flags().GetStringArray("input")
	out, _ := cmd.Flags().GetString("out")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	debug, _ := cmd.Flags().GetBool("debug")

	if len(inputs) == 0 {
		return fmt.Errorf("at least one --input is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	verbosity := output.VerbosityDefault
	switch {
	case debug:
		verbosity = output.VerbosityDebug
	case verbose:
		verbosity = output.VerbosityVerbose
	}
	cfg.ApplyFlags(nil, out, verbosity)

	logger := output.NewLogger(cfg.Verbosity)
	analytics.ReportEvent(analytics.BuildStarted)

	snapshots, err := buildAll(inputs, logger)
	if err != nil {
		analytics.ReportEvent(analytics.BuildFailed)
		return err
	}

	merged := snapshots[0]
	for _, s := range snapshots[1:] {
		if err := snapshot.Merge(merged, s); err != nil {
			analytics.ReportEvent(analytics.BuildFailed)
			return fmt.Errorf("build: merge: %w", err)
		}
	}

	if err := snapshot.Save(cfg.SnapshotPath, merged); err != nil {
		analytics.ReportEvent(analytics.BuildFailed)
		return fmt.Errorf("build: save snapshot: %w", err)
	}

	logger.Statistic("Dependency graph: %d nodes, %d edges", len(merged.Graphs.Dependency.Nodes), len(merged.Graphs.Dependency.Edges))
	logger.Statistic("Inheritance graph: %d nodes, %d edges", len(merged.Graphs.Inheritance.Nodes), len(merged.Graphs.Inheritance.Edges))
	logger.Statistic("Call graph: %d nodes, %d edges", len(merged.Graphs.Call.Nodes), len(merged.Graphs.Call.Edges))
	logger.Progress("Snapshot written to %s", cfg.SnapshotPath)
	analytics.ReportEventWithProperties(analytics.BuildCompleted, map[string]interface{}{
		"repos": len(inputs),
	})
	return nil
}

// buildAll loads and resolves every input document concurrently. Each
// repo is fully self-contained (its own index, its own graphs), so
// there's no shared state to guard. An input that fails to load is
// logged as a warning and left out; an error is returned only when no
// input loads.
func buildAll(inputs []string, logger *output.Logger) ([]*snapshot.Snapshot, error) {
	results := make([]*snapshot.Snapshot, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	for i, path := range inputs {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			in, err := ingest.Load(path)
			if err != nil {
				errs[i] = fmt.Errorf("build: load %s: %w", path, err)
				return
			}

			logger.Progress("Building %s (%d entities)", in.RepoRoot, len(in.Entities))
			res := build.Build(in, logger)
			stats := res.Index.Stats()
			logger.Statistic("%s: %d files, %d modules, %d symbols indexed", in.RepoRoot, stats.Files, stats.Modules, stats.SymbolsExported)
			results[i] = snapshot.New(in.RepoRoot, res.Index, res.Graphs, in.Entities, in.Imports)
		}(i, path)
	}
	wg.Wait()

	var built []*snapshot.Snapshot
	var firstErr error
	for i, err := range errs {
		if err != nil {
			logger.Warning("%v; skipping this input", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		built = append(built, results[i])
	}
	if len(built) == 0 {
		return nil, firstErr
	}
	return built, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringArray("input", nil, "Path to a pre-parsed entity document (repeatable, one per repo)")
	buildCmd.Flags().String("out", "", "Snapshot output path (overrides config)")
	buildCmd.Flags().String("config", ".codegraph.yaml", "Path to a config file")
	buildCmd.Flags().Bool("verbose", false, "Show progress and statistics")
	buildCmd.Flags().Bool("debug", false, "Show progress, statistics and timing diagnostics")
	buildCmd.MarkFlagRequired("input")
}
