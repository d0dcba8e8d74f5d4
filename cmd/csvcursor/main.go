package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int
	input := &inputFlags{}

	rootCmd := &cobra.Command{
		Use:   "csvcursor",
		Short: "Stream rows out of CSV files, archives and URLs",
		Long: `Stream rows out of CSV files, archives and URLs.

The input argument is a file path, an http(s) URL, a .zip archive, a
compressed file (.gz, .bz2, .zst, .xz, .sz) or - for standard input.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more (repeat for debug output)")
	input.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newCatCmd(input))
	rootCmd.AddCommand(newCountCmd(input))
	rootCmd.AddCommand(newHeadersCmd(input))
	rootCmd.AddCommand(newSniffCmd(input))

	return rootCmd
}
