package source

import "os"

// OpenFile opens path for reading. Close closes the file.
func OpenFile(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable("open", path, err)
	}
	s := NewStream(f)
	s.name = path
	s.closer = f.Close
	return s, nil
}
