package main

import (
	"github.com/provide-io/pakfb/pkg/export"
	"github.com/provide-io/pakfb/pkg/export/bundle"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		output string
		ops    string
	)

	cmd := &cobra.Command{
		Use:   "export [NAME...]",
		Short: "Bundle catalog entries into one archive (default: all visible entries)",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := export.ParseChain(ops)
			if err != nil {
				return err
			}

			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			names := args
			if len(names) == 0 {
				for _, e := range cat.List() {
					if !e.Shadowed {
						names = append(names, e.Entry.Name)
					}
				}
			}

			files := make([]bundle.File, 0, len(names))
			for _, name := range names {
				data, err := cat.Resolve(name)
				if err != nil {
					return err
				}
				files = append(files, bundle.File{Name: name, Data: data})
			}

			out, err := bundle.Export(files, chain)
			if err != nil {
				return err
			}
			logger.Info("exported entries", "count", len(files), "chain", export.ChainName(chain))
			return writeOutput(cmd.OutOrStdout(), output, out, 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or '-' for stdout (required)")
	cmd.Flags().StringVar(&ops, "ops", "tar.gz", "Operation chain, starting with tar for more than one entry")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
	return cmd
}
