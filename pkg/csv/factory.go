package csv

import (
	"context"
	"io"

	"github.com/shapestone/shape-csvcursor/pkg/source"
)

// The constructors below open their own source and return a reader that
// owns it: Close releases the file and removes any spooled temporary copy.

// FromString returns a reader over an in-memory CSV document.
func FromString(s string, opts ReaderOptions) (*Reader, error) {
	return newOwningReader(source.NewString(s), opts)
}

// FromReader returns a reader over r. A reader that cannot seek is spooled
// to a temporary file first; name labels errors. The caller keeps ownership
// of r.
func FromReader(r io.Reader, name string, opts ReaderOptions) (*Reader, error) {
	if _, ok := r.(io.Seeker); ok {
		return newOwningReader(source.NewStream(r), opts)
	}
	src, err := source.Spool(r, name)
	if err != nil {
		return nil, err
	}
	return newOwningReader(src, opts)
}

// OpenFile returns a reader over the file at path.
func OpenFile(path string, opts ReaderOptions) (*Reader, error) {
	src, err := source.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return newOwningReader(src, opts)
}

// OpenZipFile returns a reader over the named entry of a zip archive, or
// its first file entry when entry is empty.
func OpenZipFile(path, entry string, opts ReaderOptions) (*Reader, error) {
	src, err := source.OpenZipEntry(path, entry)
	if err != nil {
		return nil, err
	}
	return newOwningReader(src, opts)
}

// OpenCompressedFile returns a reader over a compressed file, choosing the
// codec from the file extension. Files with no known extension are read as is.
func OpenCompressedFile(path string, opts ReaderOptions) (*Reader, error) {
	src, err := source.OpenCompressed(path, source.DetectCompression(path))
	if err != nil {
		return nil, err
	}
	return newOwningReader(src, opts)
}

// OpenURL downloads url to a temporary file and returns a reader over it.
func OpenURL(ctx context.Context, url string, dl source.DownloadOptions, opts ReaderOptions) (*Reader, error) {
	src, err := source.Download(ctx, url, dl)
	if err != nil {
		return nil, err
	}
	return newOwningReader(src, opts)
}
