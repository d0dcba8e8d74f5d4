// Package source provides the seekable byte sources a CSV reader consumes.
//
// Every adapter implements ByteSource directly. In-memory data, files and any
// io.ReadSeeker are used in place; non-seekable inputs (compressed files, zip
// entries, HTTP bodies, stdin) are spooled to a temporary file first.
//
// A ByteSource is not safe for concurrent use.
package source

import (
	"errors"
	"fmt"
)

// ByteSource is a seekable byte stream.
type ByteSource interface {
	// Read reads up to len(p) bytes. It returns io.EOF at end of data.
	Read(p []byte) (int, error)
	// Tell returns the current absolute offset.
	Tell() (int64, error)
	// Seek moves to an absolute offset.
	Seek(offset int64) error
	// Rewind moves to offset 0.
	Rewind() error
	// EOF reports whether the last read reached end of data.
	EOF() bool
	// Seekable reports whether Seek and Rewind are supported.
	Seekable() bool
}

var (
	// ErrUnavailable is matched by every error an adapter returns when the
	// underlying data cannot be opened, read or positioned.
	ErrUnavailable = errors.New("source unavailable")

	// ErrNotSeekable is returned by Seek and Rewind on sources that cannot seek.
	ErrNotSeekable = errors.New("source is not seekable")
)

// UnavailableError describes a failed operation on a source. The low-level
// cause is kept in Err.
type UnavailableError struct {
	Op   string
	Name string
	Err  error
}

func (e *UnavailableError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%v: %s: %v", ErrUnavailable, e.Op, e.Err)
	}
	return fmt.Sprintf("%v: %s %q: %v", ErrUnavailable, e.Op, e.Name, e.Err)
}

// Unwrap returns the low-level cause.
func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUnavailable) true.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func unavailable(op, name string, err error) error {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return err
	}
	return &UnavailableError{Op: op, Name: name, Err: err}
}
