package main

import (
	"fmt"
	"os"

	"github.com/provide-io/pakfb/internal/gamedir"
	"github.com/provide-io/pakfb/pkg/export"
	"github.com/provide-io/pakfb/pkg/export/bundle"
	_ "github.com/provide-io/pakfb/pkg/export/compress"
	"github.com/provide-io/pakfb/pkg/utils/permissions"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	var (
		output string
		ops    string
		mode   string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "extract [NAME]",
		Short: "Write one entry, or every entry with --all, to disk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("give exactly one of NAME or --all")
			}

			chain, err := export.ParseChain(ops)
			if err != nil {
				return err
			}
			perm, err := permissions.ParseOctalString(mode)
			if err != nil {
				return err
			}

			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			if !all {
				data, err := cat.Resolve(args[0])
				if err != nil {
					return err
				}
				out, err := bundle.Export([]bundle.File{{Name: args[0], Data: data, Mode: int64(perm)}}, chain)
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), output, out, perm)
			}

			var names []string
			for _, e := range cat.List() {
				if !e.Shadowed {
					names = append(names, e.Entry.Name)
				}
			}
			if err := gamedir.CreateOutputDir(output, names, permissions.DirMode(perm)); err != nil {
				return err
			}

			suffix := export.Extension(chain)
			for _, name := range names {
				data, err := cat.Resolve(name)
				if err != nil {
					return err
				}
				out, err := bundle.Export([]bundle.File{{Name: name, Data: data, Mode: int64(perm)}}, chain)
				if err != nil {
					return err
				}
				target, err := gamedir.EntryPath(output, name)
				if err != nil {
					return err
				}
				if err := os.WriteFile(target+suffix, out, perm); err != nil {
					return fmt.Errorf("writing %s: %w", target+suffix, err)
				}
				logger.Debug("extracted", "name", name, "path", target+suffix)
			}

			var archives []string
			for _, a := range cat.Archives() {
				archives = append(archives, a.Name())
			}
			logger.Info("extraction complete", "entries", len(names), "dir", output, "chain", export.ChainName(chain))
			return gamedir.MarkComplete(output, archives, len(names), export.ChainName(chain))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, '-' for stdout, or directory with --all (required)")
	cmd.Flags().StringVar(&ops, "ops", "raw", "Operation chain: raw, gzip, bzip2, tar, tar.gz, tar.bz2 or e.g. 'tar|bzip2'")
	cmd.Flags().StringVar(&mode, "mode", "0644", "Octal permissions for written files")
	cmd.Flags().BoolVar(&all, "all", false, "Extract every visible entry into the output directory")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
	return cmd
}
