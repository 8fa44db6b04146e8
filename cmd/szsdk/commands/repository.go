package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRepositoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repository",
		Short: "Repository health and maintenance",
	}

	cmd.AddCommand(newRepositoryInfoCommand())
	cmd.AddCommand(newRepositoryCheckCommand())
	cmd.AddCommand(newRepositoryPurgeCommand())

	return cmd
}

func newRepositoryInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the datastores backing the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := openGuard()
			if err != nil {
				return err
			}
			defer func() { _ = guard.Close() }()

			diagnostic, err := guard.Diagnostic()
			if err != nil {
				return err
			}
			doc, err := diagnostic.GetRepositoryInfo(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}

func newRepositoryCheckCommand() *cobra.Command {
	var seconds int64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Measure repository insert performance",
		Long: `Insert timing probes into the repository for a fixed duration and
report the achieved rate. Useful for spotting misconfigured or
overloaded datastores before a load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := openGuard()
			if err != nil {
				return err
			}
			defer func() { _ = guard.Close() }()

			diagnostic, err := guard.Diagnostic()
			if err != nil {
				return err
			}
			doc, err := diagnostic.CheckRepositoryPerformance(cmd.Context(), seconds)
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}

	cmd.Flags().Int64Var(&seconds, "seconds", 3, "how long to run the measurement")

	return cmd
}

func newRepositoryPurgeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete all loaded records and resolved entities",
		Long: `Delete every loaded record and resolved entity from the repository.
Registered configurations survive. There is no undo; this exists for
development and test repositories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("purge removes all loaded data and cannot be undone: rerun with --force")
			}

			guard, err := openGuard()
			if err != nil {
				return err
			}
			defer func() { _ = guard.Close() }()

			diagnostic, err := guard.Diagnostic()
			if err != nil {
				return err
			}
			if err := diagnostic.PurgeRepository(cmd.Context()); err != nil {
				return err
			}
			log.Info().Msg("Repository purged")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the purge")

	return cmd
}
