package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/provide-io/pakfb/pkg/pak"
	"github.com/spf13/cobra"
)

func newPackCmd() *cobra.Command {
	var (
		output string
		root   string
	)

	cmd := &cobra.Command{
		Use:   "pack FILE...",
		Short: "Build a pak archive from files on disk",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := pak.NewBuilderWithLogger(logger)

			for _, path := range args {
				name, err := entryName(root, path)
				if err != nil {
					return err
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if err := b.Add(name, data); err != nil {
					return err
				}
			}

			var buf bytes.Buffer
			if _, err := b.WriteTo(&buf); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, buf.Bytes(), 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output archive (required)")
	cmd.Flags().StringVar(&root, "root", "", "Entry names are paths relative to this directory")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
	return cmd
}

// entryName turns a file path into a slash separated entry name.
func entryName(root, path string) (string, error) {
	name := path
	if root != "" {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", err
		}
		name = rel
	}
	name = filepath.ToSlash(filepath.Clean(name))
	if name == ".." || strings.HasPrefix(name, "../") || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%s is outside the pack root", path)
	}
	return name, nil
}
