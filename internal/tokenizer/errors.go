package tokenizer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField means no field and terminator could be matched at the
	// current position.
	ErrInvalidField = errors.New("invalid field")

	// ErrTooManyColumns means a row holds more fields than the configured maximum.
	ErrTooManyColumns = errors.New("too many columns")

	// ErrRowTooLarge means a row, including its terminator, does not fit in
	// ChunkSize bytes. It matches ErrInvalidField.
	ErrRowTooLarge = fmt.Errorf("%w: row exceeds %d byte buffer", ErrInvalidField, ChunkSize)

	errUnterminated = fmt.Errorf("%w: unterminated enclosure", ErrInvalidField)
)

// ParseError reports where a row failed to parse.
type ParseError struct {
	// Row is the 1-based physical row, header included.
	Row int
	// Field is the 1-based field within the row.
	Field int
	// Offset is the 1-based byte position in the stream where matching failed.
	Offset int64
	// Err is one of ErrInvalidField, ErrRowTooLarge or ErrTooManyColumns.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on row %d, field %d (byte %d): %v", e.Row, e.Field, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
