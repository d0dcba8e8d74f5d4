package csv

import (
	"errors"
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/shapestone/shape-csvcursor/internal/tokenizer"
	"github.com/shapestone/shape-csvcursor/pkg/source"
)

var log = commonlog.GetLogger("csvcursor.reader")

type cursorState int

const (
	stateUninitialized cursorState = iota
	statePositioned
	stateExhausted
)

// Reader is a forward cursor over the rows of a seekable byte source with
// rewind and an on-demand row count.
//
// Every accessor positions the cursor on the first data row if nothing has
// been read yet. A parse or source failure is sticky: Current, Next and Key
// return it until Rewind succeeds.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src    source.ByteSource
	closer io.Closer // set when the reader owns src
	opts   ReaderOptions
	tok    *tokenizer.Tokenizer

	state    cursorState
	position int // 0-based data row; undefined once exhausted
	current  Row
	header   Row
	err      error

	// stream offsets of the current row and the header
	currentStart int64
	headerStart  int64

	count   int
	counted bool
}

// NewReader returns a reader over src. Zero-valued options take their
// defaults from DefaultReaderOptions, except FetchMode whose zero value is
// already the default. The reader borrows src: Close does not close it.
func NewReader(src source.ByteSource, opts ReaderOptions) (*Reader, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidConfig)
	}
	if !src.Seekable() {
		return nil, ErrNotSeekable
	}
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Reader{
		src:  src,
		opts: opts,
		tok:  tokenizer.New(src, opts.tokenizerOptions()),
	}, nil
}

// newOwningReader is NewReader for sources the reader closes on Close.
func newOwningReader(src *source.Stream, opts ReaderOptions) (*Reader, error) {
	r, err := NewReader(src, opts)
	if err != nil {
		return nil, errors.Join(err, src.Close())
	}
	r.closer = src
	return r, nil
}

// Rewind repositions the cursor on the first data row, re-reading the header
// when the reader has one, and clears any sticky error.
func (r *Reader) Rewind() error {
	r.err = nil
	r.tok.Reset()
	if err := r.src.Rewind(); err != nil {
		return r.fail(err)
	}
	r.position = 0
	r.current = nil
	r.header = Row{}

	if r.opts.HasHeader {
		row, err := r.tok.FetchRow()
		switch {
		case errors.Is(err, io.EOF):
			r.state = stateExhausted
			log.Debugf("rewound empty source")
			return nil
		case err != nil:
			return r.fail(err)
		}
		r.header = row
		r.headerStart = r.tok.Start()
	}

	if err := r.fetch(); err != nil {
		return err
	}
	log.Debugf("rewound: header=%d fields, exhausted=%t", len(r.header), r.state == stateExhausted)
	return nil
}

// Current returns the row at the cursor. In FetchNamed mode with a header
// the row is re-aligned against the header on every call. Past the last row
// it returns an empty Record and ErrExhausted.
func (r *Reader) Current() (Record, error) {
	if err := r.init(); err != nil {
		return Record{}, err
	}
	if r.state == stateExhausted {
		return Record{}, ErrExhausted
	}
	rec, err := Align(r.header, r.current, r.mode())
	if err != nil {
		return Record{}, fmt.Errorf("data row %d: %w", r.position, err)
	}
	return rec, nil
}

// Next advances the cursor. On a reader that has not read anything yet it
// positions on the first data row instead. Advancing past the last row
// exhausts the cursor; Next on an exhausted cursor does nothing.
func (r *Reader) Next() error {
	if r.err != nil {
		return r.err
	}
	switch r.state {
	case stateUninitialized:
		return r.Rewind()
	case stateExhausted:
		return nil
	}
	r.position++
	return r.fetch()
}

// Key returns the 0-based position of the current data row. ok is false
// once the cursor is exhausted.
func (r *Reader) Key() (position int, ok bool, err error) {
	if err := r.init(); err != nil {
		return 0, false, err
	}
	if r.state == stateExhausted {
		return 0, false, nil
	}
	return r.position, true, nil
}

// Valid reports whether the cursor is on a row. It is true before the first
// read and false once exhausted or failed.
func (r *Reader) Valid() bool {
	return r.err == nil && r.state != stateExhausted
}

// Err returns the sticky error, if any.
func (r *Reader) Err() error {
	return r.err
}

// Count returns the number of data rows, excluding the header. It is
// computed once with a separate scan and cached for the life of the reader;
// the cursor position is not disturbed.
func (r *Reader) Count() (int, error) {
	if r.counted {
		return r.count, nil
	}

	saved, err := r.src.Tell()
	if err != nil {
		return 0, err
	}
	if err := r.src.Rewind(); err != nil {
		return 0, err
	}

	counter := tokenizer.New(r.src, r.opts.tokenizerOptions())
	n := 0
	for {
		err = counter.SkipRow()
		if err != nil {
			break
		}
		n++
	}

	// restore before reporting a scan failure
	if serr := r.src.Seek(saved); serr != nil {
		return 0, serr
	}
	if !errors.Is(err, io.EOF) {
		return 0, err
	}

	if r.opts.HasHeader && n > 0 {
		n--
	}
	r.count = n
	r.counted = true
	log.Debugf("counted %d data rows in %d bytes", n, counter.Offset())
	return n, nil
}

// Headers returns the header row, reading it first if needed. It is empty
// when the reader has no header or the source is empty.
func (r *Reader) Headers() (Row, error) {
	if err := r.init(); err != nil {
		return nil, err
	}
	return r.header, nil
}

// HasHeader reports whether the first row is treated as the header.
func (r *Reader) HasHeader() bool {
	return r.opts.HasHeader
}

// MaxColumns returns the largest number of fields a row may hold.
func (r *Reader) MaxColumns() int {
	return r.opts.MaxColumns
}

// SetMaxColumns changes the column limit for rows read from now on. A
// non-positive n is rejected with ErrInvalidConfig and the limit is kept.
func (r *Reader) SetMaxColumns(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: max columns %d", ErrInvalidConfig, n)
	}
	r.opts.MaxColumns = n
	r.tok.SetMaxColumns(n)
	return nil
}

// FetchMode returns how Current renders rows.
func (r *Reader) FetchMode() FetchMode {
	return r.opts.FetchMode
}

// SetFetchMode changes how Current renders rows, including the current one.
func (r *Reader) SetFetchMode(m FetchMode) error {
	if !m.valid() {
		return fmt.Errorf("%w: unrecognised fetch mode %v", ErrInvalidConfig, m)
	}
	r.opts.FetchMode = m
	return nil
}

// Close closes the source if the reader opened it.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// init performs the implicit rewind on first access.
func (r *Reader) init() error {
	if r.err != nil {
		return r.err
	}
	if r.state == stateUninitialized {
		return r.Rewind()
	}
	return nil
}

func (r *Reader) fetch() error {
	row, err := r.tok.FetchRow()
	switch {
	case errors.Is(err, io.EOF):
		r.state = stateExhausted
		r.current = nil
		return nil
	case err != nil:
		return r.fail(err)
	}
	r.current = row
	r.currentStart = r.tok.Start()
	r.state = statePositioned
	return nil
}

func (r *Reader) fail(err error) error {
	r.err = err
	r.current = nil
	log.Debugf("reader failed: %v", err)
	return err
}

func (r *Reader) mode() FetchMode {
	if !r.opts.HasHeader {
		return FetchPositional
	}
	return r.opts.FetchMode
}
