package csv_test

import (
	"reflect"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-csvcursor/pkg/csv"
)

func TestToAST(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		header bool
		want   [][]string
	}{
		{
			name:   "header and rows",
			input:  "name,age\nAlice,30\nBob,25\n",
			header: true,
			want:   [][]string{{"name", "age"}, {"Alice", "30"}, {"Bob", "25"}},
		},
		{
			name:  "no header",
			input: "a,\"b,c\"\n",
			want:  [][]string{{"a", "b,c"}},
		},
		{
			name:  "empty",
			input: "",
			want:  [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := csv.FromString(tt.input, csv.ReaderOptions{HasHeader: tt.header})
			if err != nil {
				t.Fatal(err)
			}
			// ToAST starts from the top regardless of the cursor
			_ = r.Next()

			node, err := csv.ToAST(r)
			if err != nil {
				t.Fatalf("ToAST() error = %v", err)
			}
			got := csv.NodeToInterface(node)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NodeToInterface(ToAST()) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeToInterface(t *testing.T) {
	pos := ast.ZeroPosition()
	field := ast.NewLiteralNode("x", pos)
	record := ast.NewArrayDataNode([]ast.SchemaNode{field}, pos)

	tests := []struct {
		name string
		node ast.SchemaNode
		want interface{}
	}{
		{"field", field, "x"},
		{"non-string literal", ast.NewLiteralNode(int64(7), pos), "7"},
		{"record", record, []string{"x"}},
		{"file", ast.NewArrayDataNode([]ast.SchemaNode{record}, pos), [][]string{{"x"}}},
		{"empty array", ast.NewArrayDataNode([]ast.SchemaNode{}, pos), [][]string{}},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := csv.NodeToInterface(tt.node); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NodeToInterface() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
