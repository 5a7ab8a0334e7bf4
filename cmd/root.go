package cmd

import (
	"github.com/spf13/cobra"

	"github.com/duyhunghd6/codegraph/analytics"
)

var rootCmd = &cobra.Command{
	Use:   "codegraph",
	Short: "codegraph builds dependency, inheritance and call graphs across repos",
	Long:  `codegraph resolves imports, base classes and call sites across one or more repositories into three directed graphs, persisted as a single snapshot.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		disableMetrics, _ := cmd.Flags().GetBool("disable-metrics") //nolint:all
		analytics.LoadEnvFile()
		analytics.Init(disableMetrics)
		analytics.SetVersion(Version)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("disable-metrics", false, "Disable metrics collection")
}
