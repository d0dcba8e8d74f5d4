package main

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

const sample = "id;name\n1;Ada\n2;\"Grace; Hopper\"\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	path := writeFile(t, "people.csv", []byte(sample))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "cat positional",
			args: []string{"cat", "-d", ";", path},
			want: "[\"id\",\"name\"]\n[\"1\",\"Ada\"]\n[\"2\",\"Grace; Hopper\"]\n",
		},
		{
			name: "cat named",
			args: []string{"cat", "-H", "-d", ";", "--named", path},
			want: "{\"id\":\"1\",\"name\":\"Ada\"}\n{\"id\":\"2\",\"name\":\"Grace; Hopper\"}\n",
		},
		{
			name: "cat sniffed",
			args: []string{"cat", "--sniff", "--named", path},
			want: "{\"id\":\"1\",\"name\":\"Ada\"}\n{\"id\":\"2\",\"name\":\"Grace; Hopper\"}\n",
		},
		{
			name: "count",
			args: []string{"count", "-H", "-d", ";", path},
			want: "2\n",
		},
		{
			name: "headers",
			args: []string{"headers", "--header", "--delimiter", ";", path},
			want: "[\"id\",\"name\"]\n",
		},
		{
			name: "sniff",
			args: []string{"sniff", path},
			want: "delimiter: ';'\nheader: true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountCompressed(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(sample))
	_ = zw.Close()
	path := writeFile(t, "people.csv.gz", buf.Bytes())

	got, err := run(t, "count", "--header", "-d", ";", path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2\n" {
		t.Errorf("count = %q, want 2", got)
	}
}

func TestCommandErrors(t *testing.T) {
	path := writeFile(t, "people.csv", []byte(sample))
	broken := writeFile(t, "broken.csv", []byte("a\n\"open"))

	tests := []struct {
		name string
		args []string
	}{
		{"multi-character delimiter", []string{"cat", "-d", ";;", path}},
		{"headers without header mode", []string{"headers", path}},
		{"missing file", []string{"count", filepath.Join(t.TempDir(), "nope.csv")}},
		{"parse error", []string{"cat", broken}},
		{"missing argument", []string{"count"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("Execute() succeeded, want an error")
			}
		})
	}
}

func TestDialectChar(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"\t", '\t', false},
		{"", 0, true},
		{"ab", 0, true},
	}
	for _, tt := range tests {
		got, err := dialectChar("delimiter", tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("dialectChar(%q) = %q, %v, want %q, error %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
