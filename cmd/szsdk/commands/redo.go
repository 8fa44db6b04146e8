package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brianmacy/sz-sdk-go/pkg/sz"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/retry"
)

func newRedoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redo",
		Short: "Work the redo queue",
		Long: `The engine queues follow-up work when a change affects entities
beyond the record being written. These commands inspect and drain that
queue.`,
	}

	cmd.AddCommand(newRedoCountCommand())
	cmd.AddCommand(newRedoProcessCommand())

	return cmd
}

func newRedoCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count queued redo records",
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
			count, err := engine.CountRedoRecords(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)
			return err
		},
	}
}

func newRedoProcessCommand() *cobra.Command {
	var max int64

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Drain and process queued redo records",
		Long: `Fetch queued redo records and process them until the queue is empty
or --max records have been handled. Transient datastore failures are
retried with exponential backoff.`,
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

			ctx := cmd.Context()
			var processed int64
			for max == 0 || processed < max {
				record, err := engine.GetRedoRecord(ctx)
				if err != nil {
					return err
				}
				if record == "" {
					break
				}
				err = retry.DoVoid(ctx, func(ctx context.Context) error {
					_, perr := engine.ProcessRedoRecord(ctx, record, sz.RedoDefaultFlags)
					return perr
				})
				if err != nil {
					return err
				}
				processed++
			}
			log.Info().Int64("processed", processed).Msg("Redo queue drained")
			return nil
		},
	}

	cmd.Flags().Int64Var(&max, "max", 0, "stop after this many records (0 = drain fully)")

	return cmd
}
