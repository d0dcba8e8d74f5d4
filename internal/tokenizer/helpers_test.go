package tokenizer

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// readerSource adapts an io.Reader to Source for tests.
type readerSource struct {
	r   io.Reader
	eof bool
}

func newSource(r io.Reader) *readerSource {
	return &readerSource{r: r}
}

func stringSource(s string) *readerSource {
	return newSource(strings.NewReader(s))
}

func (s *readerSource) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if errors.Is(err, io.EOF) {
		s.eof = true
	}
	return n, err
}

func (s *readerSource) EOF() bool { return s.eof }

// syntheticCSV produces a deterministic CSV stream of roughly size bytes
// without holding it in memory. Every row is "<n>,"quoted, <n>",<n*7>\n".
type syntheticCSV struct {
	size    int64
	written int64
	row     int
	pending []byte
}

func (s *syntheticCSV) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.pending) == 0 {
			if s.written >= s.size {
				break
			}
			s.pending = []byte(syntheticRow(s.row))
			s.row++
		}
		k := copy(p[n:], s.pending)
		s.pending = s.pending[k:]
		s.written += int64(k)
		n += k
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func syntheticRow(i int) string {
	n := strconv.Itoa(i)
	return n + `,"quoted, ` + n + `",` + strconv.Itoa(i*7) + "\n"
}

// failingSource returns data and then a non-EOF error.
type failingSource struct {
	data string
	err  error
	done bool
}

func (f *failingSource) Read(p []byte) (int, error) {
	if f.done {
		return 0, f.err
	}
	f.done = true
	return copy(p, f.data), nil
}

func (f *failingSource) EOF() bool { return false }
