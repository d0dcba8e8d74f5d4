package csv

// Scanner loops over the data rows of a Reader from the start.
//
// Example usage:
//
//	r, _ := csv.OpenFile("data.csv", csv.ReaderOptions{HasHeader: true})
//	defer r.Close()
//
//	scanner := csv.NewScanner(r)
//	for scanner.Scan() {
//	    name, _ := scanner.Record().GetByName("name")
//	    fmt.Println(name)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	reader  *Reader
	started bool
	record  Record
	err     error
}

// NewScanner creates a Scanner over r. The first call to Scan rewinds r.
func NewScanner(r *Reader) *Scanner {
	return &Scanner{reader: r}
}

// Scan advances to the next record. It returns false at the end of the rows
// or on error; Err tells the two apart.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	var err error
	if !s.started {
		s.started = true
		err = s.reader.Rewind()
	} else {
		err = s.reader.Next()
	}
	if err != nil {
		s.err = err
		return false
	}
	if !s.reader.Valid() {
		return false
	}

	s.record, s.err = s.reader.Current()
	return s.err == nil
}

// Record returns the record read by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.record
}

// Position returns the 0-based data row of the last record.
func (s *Scanner) Position() int {
	pos, _, _ := s.reader.Key()
	return pos
}

// Headers returns the header row. It is available after the first Scan.
func (s *Scanner) Headers() Row {
	h, _ := s.reader.Headers()
	return h
}

// Err returns the error, if any, that stopped scanning. It is nil at the
// end of the rows.
func (s *Scanner) Err() error {
	return s.err
}
