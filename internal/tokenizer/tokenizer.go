// Package tokenizer splits a byte source into CSV rows.
//
// A Tokenizer keeps a fixed-size window over the source. Before every row the
// window is topped up to ChunkSize bytes; after the row the consumed prefix is
// dropped. Memory use is therefore bounded by ChunkSize regardless of the
// stream length, and a single row, terminator included, must fit in it.
//
// Field grammar, for delimiter D and enclosure E:
//
//	Row         = Field { D Field } ( "\r\n" | "\n" | "\r" | EndOfData ) ;
//	Field       = QuotedField | PlainField ;
//	QuotedField = E { any byte except E | E E } E ;
//	PlainField  = { any byte except D, "\r", "\n" } ;
package tokenizer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/shapestone/shape-csvcursor/pkg/source"
)

const (
	// ChunkSize is the capacity of the lookahead window.
	ChunkSize = 24576

	// DefaultMaxColumns is the default limit on fields per row.
	DefaultMaxColumns = 1000

	// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
	maxEmptyReads = 100
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Source is the part of source.ByteSource the tokenizer reads from.
type Source interface {
	Read(p []byte) (int, error)
	EOF() bool
}

// Options configures a Tokenizer.
type Options struct {
	Delimiter  byte
	Enclosure  byte
	MaxColumns int
}

// DefaultOptions returns comma-delimited, double-quote-enclosed options.
func DefaultOptions() Options {
	return Options{
		Delimiter:  ',',
		Enclosure:  '"',
		MaxColumns: DefaultMaxColumns,
	}
}

// Tokenizer reads rows from a Source. It is not safe for concurrent use.
type Tokenizer struct {
	src        Source
	g          *grammar
	enclosure  byte
	maxColumns int

	buf   []byte // unconsumed bytes; cap(buf) == ChunkSize
	base  int64  // stream offset of buf[0]
	start int64  // stream offset of the last returned row
	rows  int    // rows returned since the last reset
	fresh bool   // no fill yet since the last reset
	eof   bool   // the source has no more bytes
}

// New returns a tokenizer reading from src, which must be positioned at the
// start of the stream.
func New(src Source, opts Options) *Tokenizer {
	if opts.MaxColumns <= 0 {
		opts.MaxColumns = DefaultMaxColumns
	}
	return &Tokenizer{
		src:        src,
		g:          grammarFor(opts.Delimiter, opts.Enclosure),
		enclosure:  opts.Enclosure,
		maxColumns: opts.MaxColumns,
		buf:        make([]byte, 0, ChunkSize),
		fresh:      true,
	}
}

// SetMaxColumns changes the field limit for subsequent rows. n must be positive.
func (t *Tokenizer) SetMaxColumns(n int) {
	t.maxColumns = n
}

// Reset drops buffered bytes. The caller repositions the source at offset 0;
// a leading byte-order mark is stripped again on the next fetch.
func (t *Tokenizer) Reset() {
	t.buf = t.buf[:0]
	t.base = 0
	t.start = 0
	t.rows = 0
	t.fresh = true
	t.eof = false
}

// Buffered returns the number of bytes read from the source but not yet consumed.
func (t *Tokenizer) Buffered() int {
	return len(t.buf)
}

// Offset returns the stream offset of the next unconsumed byte.
func (t *Tokenizer) Offset() int64 {
	return t.base
}

// Start returns the stream offset of the first byte of the last row returned
// by FetchRow or SkipRow.
func (t *Tokenizer) Start() int64 {
	return t.start
}

// FetchRow returns the next row. It returns io.EOF when the stream is
// exhausted, a *ParseError when the row is malformed, and an error matching
// source.ErrUnavailable when the source fails.
func (t *Tokenizer) FetchRow() ([]string, error) {
	return t.scan(true)
}

// SkipRow consumes the next row with the same validation as FetchRow but
// without building field values.
func (t *Tokenizer) SkipRow() error {
	_, err := t.scan(false)
	return err
}

func (t *Tokenizer) scan(emit bool) ([]string, error) {
	if err := t.fill(); err != nil {
		return nil, err
	}
	if len(t.buf) == 0 && t.eof {
		return nil, io.EOF
	}

	var row []string
	off, n := 0, 0
	for {
		m, err := t.g.matchField(t.buf, off, t.eof)
		if err != nil {
			return nil, t.parseError(n+1, off, err)
		}
		if n >= t.maxColumns {
			return nil, t.parseError(n+1, off, ErrTooManyColumns)
		}
		if emit {
			row = append(row, t.value(m))
		}
		n++
		off = m.next
		if m.term.endsRow() {
			break
		}
	}

	t.start = t.base
	t.consume(off)
	t.rows++
	return row, nil
}

// fill tops the window up to ChunkSize bytes or until the source is exhausted.
func (t *Tokenizer) fill() error {
	empty := 0
	for !t.eof && len(t.buf) < cap(t.buf) {
		n, err := t.src.Read(t.buf[len(t.buf):cap(t.buf)])
		t.buf = t.buf[:len(t.buf)+n]
		switch {
		case errors.Is(err, io.EOF):
			t.eof = true
		case err != nil:
			if errors.Is(err, source.ErrUnavailable) {
				return err
			}
			return &source.UnavailableError{Op: "read", Err: err}
		case n == 0:
			if t.src.EOF() {
				t.eof = true
				break
			}
			empty++
			if empty >= maxEmptyReads {
				return &source.UnavailableError{Op: "read", Err: io.ErrNoProgress}
			}
		default:
			empty = 0
		}
	}

	if t.fresh {
		t.fresh = false
		if bytes.HasPrefix(t.buf, bom) {
			t.consume(len(bom))
		}
	}
	return nil
}

// consume drops the first n buffered bytes, keeping the backing array.
func (t *Tokenizer) consume(n int) {
	k := copy(t.buf, t.buf[n:])
	t.buf = t.buf[:k]
	t.base += int64(n)
}

func (t *Tokenizer) value(m match) string {
	raw := t.buf[m.start:m.end]
	if m.escaped {
		return unescape(raw, t.enclosure)
	}
	return string(raw)
}

func (t *Tokenizer) parseError(field, off int, err error) error {
	return &ParseError{
		Row:    t.rows + 1,
		Field:  field,
		Offset: t.base + int64(off) + 1,
		Err:    err,
	}
}

// String describes the tokenizer state for debugging.
func (t *Tokenizer) String() string {
	return fmt.Sprintf("tokenizer{offset=%d buffered=%d rows=%d eof=%t}", t.base, len(t.buf), t.rows, t.eof)
}
