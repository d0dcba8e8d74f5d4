package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ToAST rewinds r and reads it to the end, returning the rows as an
// *ast.ArrayDataNode:
//   - the file is an *ast.ArrayDataNode of records, header first when present
//   - each record is an *ast.ArrayDataNode of fields
//   - each field is an *ast.LiteralNode holding a string
//
// Record positions carry the stream offset and physical row of the row;
// field positions carry the field ordinal as their column.
func ToAST(r *Reader) (*ast.ArrayDataNode, error) {
	if err := r.Rewind(); err != nil {
		return nil, err
	}

	var records []ast.SchemaNode
	line := 1
	if r.HasHeader() && len(r.header) > 0 {
		records = append(records, rowNode(r.header, r.headerStart, line))
		line++
	}
	for r.Valid() {
		records = append(records, rowNode(r.current, r.currentStart, line))
		line++
		if err := r.Next(); err != nil {
			return nil, err
		}
	}
	if records == nil {
		records = []ast.SchemaNode{}
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

func rowNode(row Row, offset int64, line int) *ast.ArrayDataNode {
	fields := make([]ast.SchemaNode, len(row))
	for i, f := range row {
		fields[i] = ast.NewLiteralNode(f, ast.NewPosition(int(offset), line, i+1))
	}
	return ast.NewArrayDataNode(fields, ast.NewPosition(int(offset), line, 1))
}

// NodeToInterface converts an AST node to native Go types.
//
// For CSV, this converts:
//   - *ast.ArrayDataNode (file) → [][]string (slice of records)
//   - *ast.ArrayDataNode (record) → []string (slice of fields)
//   - *ast.LiteralNode (field) → string (field value)
//
// An empty array converts to an empty [][]string.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		if s, ok := n.Value().(string); ok {
			return s
		}
		return fmt.Sprintf("%v", n.Value())

	case *ast.ArrayDataNode:
		elements := n.Elements()
		if len(elements) == 0 {
			return [][]string{}
		}

		switch elements[0].(type) {
		case *ast.ArrayDataNode:
			records := make([][]string, len(elements))
			for i, elem := range elements {
				if record, ok := NodeToInterface(elem).([]string); ok {
					records[i] = record
				} else {
					records[i] = []string{}
				}
			}
			return records

		case *ast.LiteralNode:
			fields := make([]string, len(elements))
			for i, elem := range elements {
				fields[i] = fmt.Sprintf("%v", NodeToInterface(elem))
			}
			return fields

		default:
			return []string{}
		}

	default:
		return nil
	}
}
