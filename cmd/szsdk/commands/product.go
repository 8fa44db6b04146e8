package commands

import (
	"github.com/spf13/cobra"

	"github.com/brianmacy/sz-sdk-go/pkg/sz"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the wrapper and native library versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("sz-sdk-go %s\n", sz.WrapperVersion())

			guard, err := openGuard()
			if err != nil {
				return err
			}
			defer func() { _ = guard.Close() }()

			product, err := guard.Product()
			if err != nil {
				return err
			}
			doc, err := product.GetVersion(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}

func newLicenseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "license",
		Short: "Show the active license and its limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := openGuard()
			if err != nil {
				return err
			}
			defer func() { _ = guard.Close() }()

			product, err := guard.Product()
			if err != nil {
				return err
			}
			doc, err := product.GetLicense(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}
