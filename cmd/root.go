package cmd

import (
	"github.com/praxisprep/praxis/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "AI study partner for JEE aspirants",
	Long:  "Praxis — AI-native terminal app for JEE preparation: syllabus notes, quizzes, doubt solving, and study plans.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PRAXIS_DB env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(resetCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PRAXIS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
