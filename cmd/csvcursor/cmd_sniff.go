package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-csvcursor/pkg/csv"
)

func newSniffCmd(input *inputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sniff <input>",
		Short: "Guess the delimiter and whether the first row is a header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input.openSource(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			sniffer, err := csv.SniffSource(src)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "delimiter: %q\nheader: %t\n", sniffer.DetectDelimiter(), sniffer.HasHeader())
			return err
		},
	}
}
