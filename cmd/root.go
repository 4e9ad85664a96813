package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/safetypro/internal/catalog"

	"github.com/abhisek/safetypro/internal/config"
	"github.com/abhisek/safetypro/internal/store"
	"github.com/spf13/cobra"
)

// cfg is loaded before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "safetypro",
	Short: "Gamified warehouse safety training",
	Long:  "SafetyPro — terminal training app for warehouse safety, with quizzes, case studies and an AI tutor.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SAFETYPRO_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML content catalog (replaces the bundled one)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SAFETYPRO_DB from the loaded config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	flag, _ := cmd.Flags().GetString("db")
	return dbPathFor(flag, cfg)
}

func dbPathFor(flag string, c *config.Config) (string, error) {
	switch {
	case flag != "":
		return flag, store.EnsureDir(flag)
	case c != nil && c.DBPath != "":
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// loadCatalog returns the catalog named by --catalog, or the bundled one.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	return catalogFrom(path)
}

func catalogFrom(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cat, nil
}

// openStore opens the event database selected by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
