package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"
)

// spoolChunkSize bounds the memory used while copying.
const spoolChunkSize = 128 * 1024

var log = commonlog.GetLogger("csvcursor.source")

// Spool copies r into a new temporary file and returns a seekable source
// over it. Close closes and removes the file. name only labels errors.
func Spool(r io.Reader, name string) (*Stream, error) {
	path := filepath.Join(os.TempDir(), "csvcursor-"+uuid.NewString()+".csv")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, unavailable("spool", name, err)
	}
	discard := func() {
		_ = f.Close()
		_ = os.Remove(path)
	}

	n, err := io.CopyBuffer(f, r, make([]byte, spoolChunkSize))
	if err != nil {
		discard()
		return nil, unavailable("spool", name, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		discard()
		return nil, unavailable("spool", name, err)
	}
	log.Debugf("spooled %d bytes from %q to %s", n, name, path)

	s := NewStream(f)
	s.name = name
	s.tempPath = path
	s.closer = func() error {
		return errors.Join(f.Close(), os.Remove(path))
	}
	return s, nil
}
