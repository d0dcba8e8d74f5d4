package csv

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is the ordered fields of one logical CSV line.
type Row []string

// NamedRow maps header names to field values, keeping the header's
// first-occurrence name order. When a name repeats in the header the last
// value wins. A value can be missing when the header is wider than the row;
// missing is distinct from the empty string.
type NamedRow struct {
	names   []string
	values  []string
	present []bool
	index   map[string]int
}

// Len returns the number of distinct names.
func (n *NamedRow) Len() int {
	return len(n.names)
}

// Names returns the distinct header names in order.
func (n *NamedRow) Names() []string {
	names := make([]string, len(n.names))
	copy(names, n.names)
	return names
}

// Get returns the value for name. ok is false when the name is not in the
// header or its value is missing.
func (n *NamedRow) Get(name string) (value string, ok bool) {
	i, known := n.index[name]
	if !known || !n.present[i] {
		return "", false
	}
	return n.values[i], true
}

// Has reports whether name is in the header.
func (n *NamedRow) Has(name string) bool {
	_, ok := n.index[name]
	return ok
}

// Missing reports whether name is in the header but the row had no field for it.
func (n *NamedRow) Missing(name string) bool {
	i, ok := n.index[name]
	return ok && !n.present[i]
}

// MarshalJSON renders an object in header order with missing values as null.
func (n *NamedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range n.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if !n.present[i] {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(n.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Record is one data row as returned by Reader.Current.
type Record struct {
	fields Row
	named  *NamedRow // nil unless rendered in FetchNamed mode
}

// Get gets the field value at the 0-based index.
// Returns (value, false) if the index is out of bounds.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName gets the field value by header name.
// Returns (value, false) if the record is positional, the name is unknown or
// the value is missing.
func (r Record) GetByName(name string) (string, bool) {
	if r.named == nil {
		return "", false
	}
	return r.named.Get(name)
}

// Fields returns a copy of the positional field values.
func (r Record) Fields() Row {
	fields := make(Row, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of positional fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Named returns the name-to-value rendering, or nil for a positional record.
func (r Record) Named() *NamedRow {
	return r.named
}

// MarshalJSON renders a named record as an object and a positional one as an array.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.named != nil {
		return r.named.MarshalJSON()
	}
	if r.fields == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(r.fields))
}

// Align renders data according to mode. In FetchPositional mode the fields
// pass through. In FetchNamed mode each field is paired with the header name
// at the same position: a header wider than the row leaves the trailing names
// missing, and a row wider than the header fails with ErrRowWiderThanHeader.
func Align(header, data Row, mode FetchMode) (Record, error) {
	switch mode {
	case FetchPositional:
		return Record{fields: data}, nil
	case FetchNamed:
	default:
		return Record{}, fmt.Errorf("%w: unrecognised fetch mode %v", ErrInvalidConfig, mode)
	}

	if len(header) < len(data) {
		return Record{}, fmt.Errorf("%w: %d fields, %d headers", ErrRowWiderThanHeader, len(data), len(header))
	}

	named := &NamedRow{
		names:   make([]string, 0, len(header)),
		values:  make([]string, 0, len(header)),
		present: make([]bool, 0, len(header)),
		index:   make(map[string]int, len(header)),
	}
	for i, name := range header {
		var value string
		present := i < len(data)
		if present {
			value = data[i]
		}
		if j, dup := named.index[name]; dup {
			named.values[j] = value
			named.present[j] = present
			continue
		}
		named.index[name] = len(named.names)
		named.names = append(named.names, name)
		named.values = append(named.values, value)
		named.present = append(named.present, present)
	}
	return Record{fields: data, named: named}, nil
}
