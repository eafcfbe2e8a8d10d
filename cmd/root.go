package cmd

import (
	"fmt"

	"github.com/arjunrao/learnpath/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: "Personalized course recommendations and learning paths",
	Long: "Learnpath scores catalog courses against a learner's skills and goals,\n" +
		"plans prerequisite-ordered learning paths, analyzes skill gaps, and runs\n" +
		"adaptive skill assessments in the terminal.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNPATH_DB env var)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEARNPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
