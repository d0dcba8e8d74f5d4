package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(input *inputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "count <input>",
		Short: "Print the number of data rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, src, err := input.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			n, err := r.Count()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}
