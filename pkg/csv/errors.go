package csv

import (
	"errors"

	"github.com/shapestone/shape-csvcursor/internal/tokenizer"
	"github.com/shapestone/shape-csvcursor/pkg/source"
)

// ParseError reports the row, field and byte position of a malformed row.
// Unwrap yields ErrInvalidField, ErrRowTooLarge or ErrTooManyColumns.
type ParseError = tokenizer.ParseError

var (
	// ErrNotSeekable is returned by NewReader for a source that cannot seek.
	ErrNotSeekable = source.ErrNotSeekable

	// ErrInvalidConfig indicates a rejected option or setter argument.
	ErrInvalidConfig = errors.New("invalid reader configuration")

	// ErrInvalidField indicates no legal field could be matched, typically an
	// enclosure that never closes.
	ErrInvalidField = tokenizer.ErrInvalidField

	// ErrRowTooLarge indicates a row that does not fit the read buffer.
	// It matches ErrInvalidField.
	ErrRowTooLarge = tokenizer.ErrRowTooLarge

	// ErrTooManyColumns indicates a row with more fields than MaxColumns.
	ErrTooManyColumns = tokenizer.ErrTooManyColumns

	// ErrRowWiderThanHeader indicates a data row with more fields than the
	// header, which cannot be rendered in Named mode.
	ErrRowWiderThanHeader = errors.New("row has more columns than headers")

	// ErrSourceUnavailable is matched by every I/O failure of the byte source.
	ErrSourceUnavailable = source.ErrUnavailable

	// ErrExhausted is returned by Current once the cursor is past the last row.
	ErrExhausted = errors.New("no current row")
)
