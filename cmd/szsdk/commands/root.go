package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brianmacy/sz-sdk-go/pkg/sz"
)

var (
	// Global flags
	settingsJSON string
	databasePath string
	moduleName   string
	verbose      bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, sz.ErrNotBuilt) {
		return fmt.Errorf("native library unavailable, build with cgo against a Senzing installation under /opt/senzing: %w", err)
	}
	return err
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "szsdk",
		Short: "Senzing repository tooling",
		Long: `szsdk inspects and manages a Senzing entity resolution repository
through the native SDK.

Point it at a repository with --settings (a full initialization JSON
document) or --database (a SQLite database path using the standard
installation layout).`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVar(&settingsJSON, "settings", "", "initialization settings JSON, or @path to a file holding it")
	rootCmd.PersistentFlags().StringVar(&databasePath, "database", "", "SQLite repository database path")
	rootCmd.PersistentFlags().StringVar(&moduleName, "module-name", "", "instance name reported to the native library (default szsdk-<uuid>)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose native logging")

	// Add subcommands
	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newLicenseCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newRepositoryCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newRedoCommand())

	return rootCmd
}
