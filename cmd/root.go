package cmd

import (
	"github.com/abhisek/intervue/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intervue",
	Short: "AI-powered Excel mock interviewer",
	Long:  "Intervue — a terminal mock interviewer that asks Excel questions, grades your answers with an LLM, and adapts the difficulty to your performance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTERVUE_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (default: built-in bank)")
	rootCmd.Flags().String("reports", "", "Directory to also write the report as a Markdown file")
	rootCmd.Flags().String("csv", "", "CSV file to append a one-line interview summary to")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then INTERVUE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
