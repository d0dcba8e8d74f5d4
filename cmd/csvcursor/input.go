package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/shapestone/shape-csvcursor/pkg/csv"
	"github.com/shapestone/shape-csvcursor/pkg/source"
)

// inputFlags holds the flags shared by every subcommand that reads CSV.
type inputFlags struct {
	header     bool
	delimiter  string
	enclosure  string
	maxColumns int
	sniff      bool
	entry      string
}

func (f *inputFlags) register(flags *pflag.FlagSet) {
	flags.BoolVarP(&f.header, "header", "H", false, "treat the first row as column names")
	flags.StringVarP(&f.delimiter, "delimiter", "d", ",", `field delimiter (a single character, or "tab")`)
	flags.StringVarP(&f.enclosure, "enclosure", "e", `"`, "field enclosure character")
	flags.IntVar(&f.maxColumns, "max-columns", 1000, "maximum number of fields per row")
	flags.BoolVar(&f.sniff, "sniff", false, "detect the delimiter and header row from the data")
	flags.StringVar(&f.entry, "entry", "", "zip archive entry to read (default: the first file)")
}

// options builds reader options from the flags.
func (f *inputFlags) options() (csv.ReaderOptions, error) {
	delimiter, err := dialectChar("delimiter", f.delimiter)
	if err != nil {
		return csv.ReaderOptions{}, err
	}
	enclosure, err := dialectChar("enclosure", f.enclosure)
	if err != nil {
		return csv.ReaderOptions{}, err
	}
	opts := csv.DefaultReaderOptions()
	opts.HasHeader = f.header
	opts.Delimiter = delimiter
	opts.Enclosure = enclosure
	opts.MaxColumns = f.maxColumns
	return opts, opts.Validate()
}

// open opens arg and returns a reader over it together with the source,
// which the caller closes.
func (f *inputFlags) open(ctx context.Context, arg string) (*csv.Reader, *source.Stream, error) {
	opts, err := f.options()
	if err != nil {
		return nil, nil, err
	}
	src, err := f.openSource(ctx, arg)
	if err != nil {
		return nil, nil, err
	}

	if f.sniff {
		sniffer, err := csv.SniffSource(src)
		if err != nil {
			src.Close()
			return nil, nil, err
		}
		opts.Delimiter = sniffer.DetectDelimiter()
		opts.HasHeader = sniffer.HasHeader()
		log.Infof("sniffed %s: delimiter %q, header %t", arg, opts.Delimiter, opts.HasHeader)
	}

	r, err := csv.NewReader(src, opts)
	if err != nil {
		src.Close()
		return nil, nil, err
	}
	return r, src, nil
}

func (f *inputFlags) openSource(ctx context.Context, arg string) (*source.Stream, error) {
	switch {
	case arg == "-":
		return source.Spool(os.Stdin, "stdin")
	case strings.HasPrefix(arg, "http://"), strings.HasPrefix(arg, "https://"):
		return source.Download(ctx, arg, source.DownloadOptions{})
	case strings.EqualFold(filepath.Ext(arg), ".zip"):
		return source.OpenZipEntry(arg, f.entry)
	default:
		return source.OpenCompressed(arg, source.DetectCompression(arg))
	}
}

// dialectChar parses a delimiter or enclosure flag value.
func dialectChar(name, value string) (rune, error) {
	switch value {
	case "tab", `\t`:
		return '\t', nil
	}
	r := []rune(value)
	if len(r) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, value)
	}
	return r[0], nil
}
