package csv

import (
	"fmt"
	"unicode/utf8"

	"github.com/shapestone/shape-csvcursor/internal/tokenizer"
)

// FetchMode selects how Reader.Current renders a data row.
type FetchMode int

const (
	// FetchNamed pairs each field with its header name. It only applies
	// when the reader has a header row; otherwise rows stay positional.
	FetchNamed FetchMode = iota
	// FetchPositional returns the fields in source order.
	FetchPositional
)

// String returns the string representation of FetchMode.
func (m FetchMode) String() string {
	switch m {
	case FetchNamed:
		return "named"
	case FetchPositional:
		return "positional"
	default:
		return fmt.Sprintf("FetchMode(%d)", m)
	}
}

func (m FetchMode) valid() bool {
	return m == FetchNamed || m == FetchPositional
}

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// HasHeader treats the first row as column names.
	// Default: false
	HasHeader bool

	// Delimiter separates fields. It must be an ASCII character other than CR or LF.
	// Default: ','
	Delimiter rune

	// Enclosure quotes fields. It must be an ASCII character other than CR, LF or
	// the delimiter.
	// Default: '"'
	Enclosure rune

	// MaxColumns is the largest number of fields a row may hold.
	// Default: 1000
	MaxColumns int

	// FetchMode selects positional or named rows.
	// Default: FetchNamed
	FetchMode FetchMode
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		HasHeader:  false,
		Delimiter:  ',',
		Enclosure:  '"',
		MaxColumns: tokenizer.DefaultMaxColumns,
		FetchMode:  FetchNamed,
	}
}

// withDefaults fills zero-valued fields from DefaultReaderOptions.
func (o ReaderOptions) withDefaults() ReaderOptions {
	d := DefaultReaderOptions()
	if o.Delimiter == 0 {
		o.Delimiter = d.Delimiter
	}
	if o.Enclosure == 0 {
		o.Enclosure = d.Enclosure
	}
	if o.MaxColumns == 0 {
		o.MaxColumns = d.MaxColumns
	}
	return o
}

// Validate checks the options, returning an error matching ErrInvalidConfig.
func (o ReaderOptions) Validate() error {
	if err := validDialectByte("delimiter", o.Delimiter); err != nil {
		return err
	}
	if err := validDialectByte("enclosure", o.Enclosure); err != nil {
		return err
	}
	if o.Delimiter == o.Enclosure {
		return fmt.Errorf("%w: delimiter and enclosure are both %q", ErrInvalidConfig, o.Delimiter)
	}
	if o.MaxColumns <= 0 {
		return fmt.Errorf("%w: max columns %d", ErrInvalidConfig, o.MaxColumns)
	}
	if !o.FetchMode.valid() {
		return fmt.Errorf("%w: unrecognised fetch mode %v", ErrInvalidConfig, o.FetchMode)
	}
	return nil
}

func validDialectByte(name string, r rune) error {
	if r <= 0 || r >= utf8.RuneSelf || r == '\r' || r == '\n' {
		return fmt.Errorf("%w: %s %q must be a single ASCII byte other than CR or LF", ErrInvalidConfig, name, r)
	}
	return nil
}

func (o ReaderOptions) tokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		Delimiter:  byte(o.Delimiter),
		Enclosure:  byte(o.Enclosure),
		MaxColumns: o.MaxColumns,
	}
}
