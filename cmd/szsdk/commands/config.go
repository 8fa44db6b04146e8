package commands

import (
	"github.com/spf13/cobra"

	"github.com/brianmacy/sz-sdk-go/pkg/sz"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect registered configurations",
	}

	cmd.AddCommand(newConfigRegistryCommand())
	cmd.AddCommand(newConfigExportCommand())

	return cmd
}

func newConfigRegistryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "List registered configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := openGuard()
			if err != nil {
				return err
			}
			defer func() { _ = guard.Close() }()

			cfgmgr, err := guard.ConfigManager()
			if err != nil {
				return err
			}
			doc, err := cfgmgr.GetConfigRegistry(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}

func newConfigExportCommand() *cobra.Command {
	var configID int64

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a configuration definition",
		Long: `Print the JSON definition of a registered configuration.

Without --id the current default configuration is exported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := openGuard()
			if err != nil {
				return err
			}
			defer func() { _ = guard.Close() }()

			cfgmgr, err := guard.ConfigManager()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			id := sz.ConfigID(configID)
			if id == 0 {
				id, err = cfgmgr.GetDefaultConfigID(ctx)
				if err != nil {
					return err
				}
			}

			cfg, err := cfgmgr.CreateConfigFromID(ctx, id)
			if err != nil {
				return err
			}
			defer func() { _ = cfg.Close() }()

			definition, err := cfg.Export(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, definition)
		},
	}

	cmd.Flags().Int64Var(&configID, "id", 0, "configuration ID (default: the repository default)")

	return cmd
}
