package csv

import (
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/shapestone/shape-csvcursor/internal/tokenizer"
	"github.com/shapestone/shape-csvcursor/pkg/source"
)

// candidateDelimiters are the delimiters the Sniffer considers, in order of
// preference on a tie.
var candidateDelimiters = []rune{',', '\t', ';', '|'}

var (
	headerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),      // snake_case or identifier
		regexp.MustCompile(`^[a-zA-Z]+[A-Z][a-zA-Z]*$`),     // camelCase
		regexp.MustCompile(`^[A-Z][a-z]+([ ][A-Z][a-z]+)*$`), // Title Case
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	}
)

// Sniffer guesses the delimiter and header presence of a CSV sample.
type Sniffer struct {
	sample    string
	enclosure rune
	delimiter rune
	hasHeader bool
	analyzed  bool
}

// NewSniffer creates a Sniffer for a sample of CSV data with '"' as the
// enclosure. For best results, provide at least 2-3 lines of data.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{sample: sample, enclosure: '"'}
}

// SniffSource reads up to one buffer of src, rewinds it and returns a
// Sniffer over what was read.
func SniffSource(src source.ByteSource) (*Sniffer, error) {
	buf := make([]byte, tokenizer.ChunkSize)
	n, err := io.ReadFull(src, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	if err := src.Rewind(); err != nil {
		return nil, err
	}
	return NewSniffer(strings.TrimPrefix(string(buf[:n]), "\xEF\xBB\xBF")), nil
}

func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.delimiter = s.detectDelimiter()
	s.hasHeader = s.detectHeader()
	s.analyzed = true
}

// DetectDelimiter returns the detected field delimiter.
// Common delimiters checked: comma, tab, semicolon, pipe.
func (s *Sniffer) DetectDelimiter() rune {
	s.analyze()
	return s.delimiter
}

// HasHeader returns true if the first row appears to be a header.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

// Options returns DefaultReaderOptions with the detected delimiter and
// header setting applied.
func (s *Sniffer) Options() ReaderOptions {
	opts := DefaultReaderOptions()
	opts.Delimiter = s.DetectDelimiter()
	opts.HasHeader = s.HasHeader()
	return opts
}

// detectDelimiter scores each candidate by how often it appears outside
// enclosures on the first line, with a bonus when every line agrees.
func (s *Sniffer) detectDelimiter() rune {
	lines := s.countPerLine()
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestScore := 0
	for _, delim := range candidateDelimiters {
		first := lines[0][delim]
		if first == 0 {
			continue
		}
		score := first
		consistent := true
		for _, counts := range lines[1:] {
			if counts[delim] != first {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10
		}
		if score > bestScore {
			best = delim
			bestScore = score
		}
	}
	return best
}

// countPerLine counts candidate delimiters outside enclosures for each
// non-empty line of the sample. A final line cut off by the sample boundary
// is dropped when there are earlier lines.
func (s *Sniffer) countPerLine() []map[rune]int {
	tok := tokenizer.NewDialectTokenizer(candidateDelimiters, s.enclosure)
	tok.Initialize(s.sample)

	var lines []map[rune]int
	counts := map[rune]int{}
	inQuotes, blank := false, true
	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		switch token.Kind() {
		case tokenizer.TokenEnclosure:
			inQuotes = !inQuotes
			blank = false
		case tokenizer.TokenDelimiter:
			if !inQuotes {
				counts[[]rune(token.ValueString())[0]]++
			}
			blank = false
		case tokenizer.TokenNewline:
			if inQuotes {
				continue
			}
			if !blank {
				lines = append(lines, counts)
			}
			counts, blank = map[rune]int{}, true
		default:
			blank = false
		}
	}
	if !blank && (len(lines) == 0 || strings.HasSuffix(s.sample, "\n") || strings.HasSuffix(s.sample, "\r")) {
		lines = append(lines, counts)
	}
	return lines
}

// detectHeader compares the first row against the second: a header has
// more name-like fields than data-like ones.
func (s *Sniffer) detectHeader() bool {
	opts := tokenizer.DefaultOptions()
	opts.Delimiter = byte(s.delimiter)
	opts.Enclosure = byte(s.enclosure)
	tok := tokenizer.New(source.NewString(s.sample), opts)

	first, err := tok.FetchRow()
	if err != nil {
		return false
	}
	var second []string
	for second == nil {
		row, err := tok.FetchRow()
		if err != nil {
			return false // need at least 2 rows to compare
		}
		if len(row) > 1 || row[0] != "" {
			second = row
		}
	}

	headerScore := 0
	dataScore := 0
	for _, field := range first {
		field = strings.TrimSpace(field)
		if isLikelyHeader(field) {
			headerScore++
		}
		if isLikelyData(field) {
			dataScore++
		}
	}
	return headerScore > dataScore
}

// isLikelyHeader checks if a field looks like a header name.
func isLikelyHeader(s string) bool {
	if s == "" || isNumeric(s) {
		return false
	}
	for _, pattern := range headerPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// isLikelyData checks if a field looks like data rather than a header.
func isLikelyData(s string) bool {
	if s == "" {
		return false
	}
	if isNumeric(s) || strings.Contains(s, "@") {
		return true
	}
	for _, pattern := range datePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// isNumeric checks if a string represents a number.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}

	hasDot := false
	for _, ch := range s {
		if ch == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else if !unicode.IsDigit(ch) {
			return false
		}
	}
	return len(s) > 0
}
