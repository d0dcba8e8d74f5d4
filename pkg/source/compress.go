package source

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies the codec of a compressed CSV file.
type Compression int

const (
	// None means the file is plain CSV.
	None Compression = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Bzip2 is bzip2.
	Bzip2
	// Zstd is Zstandard.
	Zstd
	// Xz is the xz container format.
	Xz
	// Snappy is the snappy framing format.
	Snappy
)

// String returns the codec name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case Zstd:
		return "zstd"
	case Xz:
		return "xz"
	case Snappy:
		return "snappy"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// DetectCompression guesses the codec from the file extension.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".bz2":
		return Bzip2
	case ".zst", ".zstd":
		return Zstd
	case ".xz":
		return Xz
	case ".sz", ".snappy":
		return Snappy
	default:
		return None
	}
}

// Decompress wraps r with the decoder for c. The returned close function
// releases decoder resources; it does not close r.
func Decompress(r io.Reader, c Compression) (io.Reader, func() error, error) {
	nop := func() error { return nil }
	switch c {
	case None:
		return r, nop, nil
	case Gzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return gz, gz.Close, nil
	case Bzip2:
		return bzip2.NewReader(r), nop, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("create zstd reader: %w", err)
		}
		return dec, func() error { dec.Close(); return nil }, nil
	case Xz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("create xz reader: %w", err)
		}
		return xr, nop, nil
	case Snappy:
		return snappy.NewReader(r), nop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported compression %v", c)
	}
}

// OpenCompressed opens a compressed CSV file and spools the decompressed
// content so it can be read randomly. With None it behaves like OpenFile.
func OpenCompressed(path string, c Compression) (*Stream, error) {
	if c == None {
		return OpenFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable("open", path, err)
	}
	defer f.Close()

	r, closeDecoder, err := Decompress(f, c)
	if err != nil {
		return nil, unavailable("decompress", path, err)
	}
	defer closeDecoder()

	return Spool(r, path)
}
