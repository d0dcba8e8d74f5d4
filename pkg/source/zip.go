package source

import (
	"archive/zip"
	"errors"
	"fmt"
)

var errNoEntry = errors.New("no matching entry in zip archive")

// OpenZipEntry spools one entry of the zip archive at path. An empty name
// selects the first file entry.
func OpenZipEntry(path, name string) (*Stream, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, unavailable("open zip", path, err)
	}
	defer zr.Close()

	var entry *zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if name == "" || f.Name == name {
			entry = f
			break
		}
	}
	if entry == nil {
		if name == "" {
			return nil, unavailable("open zip", path, errNoEntry)
		}
		return nil, unavailable("open zip", path, fmt.Errorf("%w: %q", errNoEntry, name))
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, unavailable("open zip entry", path+"!"+entry.Name, err)
	}
	defer rc.Close()

	return Spool(rc, path+"!"+entry.Name)
}
