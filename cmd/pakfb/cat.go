package main

import (
	"github.com/spf13/cobra"
)

func newCatCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "cat NAME",
		Short: "Write an entry's bytes to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			var data []byte
			if from != "" {
				data, err = cat.ReadFrom(from, args[0])
			} else {
				data, err = cat.Resolve(args[0])
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Read from this archive even if another one shadows it")
	return cmd
}
