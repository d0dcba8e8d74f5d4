package source

import (
	"bytes"
	"strings"
)

// NewString returns an in-memory source over s.
func NewString(s string) *Stream {
	return NewStream(strings.NewReader(s))
}

// NewBytes returns an in-memory source over b. b must not be modified while
// the source is in use.
func NewBytes(b []byte) *Stream {
	return NewStream(bytes.NewReader(b))
}
