package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newHeadersCmd(input *inputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "headers <input>",
		Short: "Print the header row as a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, src, err := input.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			if !r.HasHeader() {
				return fmt.Errorf("%s: no header row (use --header or --sniff)", args[0])
			}
			headers, err := r.Headers()
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode([]string(headers))
		},
	}
}
