// Package csv reads CSV rows from a seekable byte source through a
// pull-based cursor.
//
// A Reader holds at most one buffer of the source in memory, so it can walk
// files of any length. It can rewind, count the data rows without moving the
// cursor, and render each row either positionally or as a name-to-value
// mapping against a header row.
//
// Field grammar, for delimiter D and enclosure E:
//
//	Row         = Field { D Field } ( "\r\n" | "\n" | "\r" | EndOfData ) ;
//	Field       = QuotedField | PlainField ;
//	QuotedField = E { any byte except E | E E } E ;
//	PlainField  = { any byte except D, "\r", "\n" } ;
//
// A leading UTF-8 byte-order mark is skipped. An empty line is a row with one
// empty field.
//
// # Cursor protocol
//
//	r, err := csv.OpenFile("people.csv", csv.ReaderOptions{HasHeader: true})
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//
//	for ; r.Valid(); r.Next() {
//	    rec, err := r.Current()
//	    if err != nil {
//	        break
//	    }
//	    name, _ := rec.GetByName("name")
//	    fmt.Println(name)
//	}
//	if err := r.Err(); err != nil {
//	    // handle error
//	}
//
// Scanner wraps the same loop in the bufio.Scanner style.
//
// # Errors
//
// Malformed rows fail with a *ParseError that unwraps to ErrInvalidField,
// ErrRowTooLarge or ErrTooManyColumns. Source failures match
// ErrSourceUnavailable. Both are sticky until Rewind.
//
// # Thread Safety
//
// A Reader and its source must be used by one goroutine at a time. Separate
// readers share no mutable state.
package csv

// Format returns the format identifier for this reader.
func Format() string {
	return "CSV"
}
