package main

import (
	"github.com/provide-io/pakfb/pkg"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Read every entry of every archive and check the palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			return pkg.VerifyCatalogWithLogger(cat, logger)
		},
	}
}
