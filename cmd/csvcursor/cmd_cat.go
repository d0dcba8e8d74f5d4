package main

import (
	"bufio"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/shapestone/shape-csvcursor/pkg/csv"
)

var log = commonlog.GetLogger("csvcursor")

func newCatCmd(input *inputFlags) *cobra.Command {
	var named bool

	cmd := &cobra.Command{
		Use:   "cat <input>",
		Short: "Print each data row as a JSON line",
		Long: `Print each data row as one line of JSON.

Rows are JSON arrays. With --named and --header each row is an object
keyed by column name; names the row has no field for are null.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, src, err := input.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			mode := csv.FetchPositional
			if named {
				mode = csv.FetchNamed
			}
			if err := r.SetFetchMode(mode); err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			enc := json.NewEncoder(out)
			scanner := csv.NewScanner(r)
			rows := 0
			for scanner.Scan() {
				if err := enc.Encode(scanner.Record()); err != nil {
					return err
				}
				rows++
			}
			if err := scanner.Err(); err != nil {
				return errors.Join(err, out.Flush())
			}
			log.Debugf("printed %d rows", rows)
			return out.Flush()
		},
	}

	cmd.Flags().BoolVar(&named, "named", false, "print rows as objects keyed by header name")

	return cmd
}
