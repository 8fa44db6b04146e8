package commands

import (
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show engine workload statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := openGuard()
			if err != nil {
				return err
			}
			defer func() { _ = guard.Close() }()

			engine, err := guard.Engine()
			if err != nil {
				return err
			}
			doc, err := engine.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}
