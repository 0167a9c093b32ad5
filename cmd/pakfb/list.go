package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// useColor reports whether w is a terminal that should receive ANSI colour.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries in lookup order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			out := cmd.OutOrStdout()
			archiveColor := color.New(color.FgCyan)
			shadowColor := color.New(color.FgHiBlack)
			if !useColor(out) {
				archiveColor.DisableColor()
				shadowColor.DisableColor()
			}

			for _, e := range cat.List() {
				if e.Shadowed && !all {
					continue
				}
				line := fmt.Sprintf("%10d  %s  %s", e.Entry.Length, archiveColor.Sprintf("%-10s", e.Archive), e.Entry.Name)
				if e.Shadowed {
					line = shadowColor.Sprintf("%10d  %-10s  %s (shadowed)", e.Entry.Length, e.Archive, e.Entry.Name)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include entries hidden by an earlier archive")
	return cmd
}
