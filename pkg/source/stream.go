package source

import (
	"errors"
	"io"
)

// Stream adapts an io.Reader to ByteSource. It is seekable when the reader
// also implements io.Seeker.
type Stream struct {
	r        io.Reader
	seeker   io.Seeker
	closer   func() error
	name     string
	tempPath string
	pos      int64
	eof      bool
}

var _ ByteSource = (*Stream)(nil)

// NewStream wraps r. The caller keeps ownership of r: Close does not close it.
func NewStream(r io.Reader) *Stream {
	s := &Stream{r: r}
	if sk, ok := r.(io.Seeker); ok {
		s.seeker = sk
	}
	return s
}

// Name returns the file name, URL or other label the stream was opened from.
func (s *Stream) Name() string {
	return s.name
}

func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.r.Read(p)
	s.pos += int64(n)
	switch {
	case errors.Is(err, io.EOF):
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, unavailable("read", s.name, err)
	}
	return n, nil
}

func (s *Stream) Tell() (int64, error) {
	return s.pos, nil
}

func (s *Stream) Seek(offset int64) error {
	if s.seeker == nil {
		return unavailable("seek", s.name, ErrNotSeekable)
	}
	if _, err := s.seeker.Seek(offset, io.SeekStart); err != nil {
		return unavailable("seek", s.name, err)
	}
	s.pos = offset
	s.eof = false
	return nil
}

func (s *Stream) Rewind() error {
	return s.Seek(0)
}

func (s *Stream) EOF() bool {
	return s.eof
}

func (s *Stream) Seekable() bool {
	return s.seeker != nil
}

// TempPath returns the temporary file backing a spooled stream, or "".
func (s *Stream) TempPath() string {
	return s.tempPath
}

// Close releases whatever the adapter that created the stream acquired:
// open files and spooled temporary files. Streams from NewStream, NewString
// and NewBytes have nothing to release.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	closer := s.closer
	s.closer = nil
	if err := closer(); err != nil {
		return unavailable("close", s.name, err)
	}
	return nil
}
