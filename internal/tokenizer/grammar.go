package tokenizer

import (
	"bytes"
	"sync"
)

// byteClass partitions the 256 byte values for the field grammar.
type byteClass uint8

const (
	classOther byteClass = iota
	classDelimiter
	classEnclosure
	classCR
	classLF
)

// terminator is what follows a field.
type terminator uint8

const (
	termDelimiter terminator = iota
	termCRLF
	termLF
	termCR
	termEnd // end of data
)

func (t terminator) endsRow() bool {
	return t != termDelimiter
}

// grammar matches one field plus its terminator. It is immutable and shared
// by every tokenizer using the same delimiter and enclosure.
type grammar struct {
	classes   [256]byteClass
	delimiter byte
	enclosure byte
}

type grammarKey struct {
	delimiter byte
	enclosure byte
}

var grammars sync.Map // grammarKey -> *grammar

func grammarFor(delimiter, enclosure byte) *grammar {
	key := grammarKey{delimiter, enclosure}
	if g, ok := grammars.Load(key); ok {
		return g.(*grammar)
	}
	g := &grammar{delimiter: delimiter, enclosure: enclosure}
	g.classes['\r'] = classCR
	g.classes['\n'] = classLF
	g.classes[enclosure] = classEnclosure
	g.classes[delimiter] = classDelimiter
	actual, _ := grammars.LoadOrStore(key, g)
	return actual.(*grammar)
}

// match is one matched field. buf[start:end] is the raw value with any
// surrounding enclosures already excluded; next is the offset after the
// terminator.
type match struct {
	start   int
	end     int
	escaped bool // value contains doubled enclosures
	term    terminator
	next    int
}

// matchField matches a field starting exactly at off. eof reports whether
// buf holds everything left in the stream.
//
// A field opening with the enclosure is matched as a quoted field when its
// closing enclosure is followed by a terminator; otherwise the same bytes are
// re-read as an unquoted field and the enclosures stay literal.
func (g *grammar) matchField(buf []byte, off int, eof bool) (match, error) {
	if off < len(buf) && g.classes[buf[off]] == classEnclosure {
		m, ok, err := g.matchQuoted(buf, off, eof)
		if err != nil || ok {
			return m, err
		}
	}
	return g.matchUnquoted(buf, off, eof)
}

func (g *grammar) matchQuoted(buf []byte, off int, eof bool) (match, bool, error) {
	escaped := false
	i := off + 1
	for {
		j := bytes.IndexByte(buf[i:], g.enclosure)
		if j < 0 {
			if eof {
				return match{}, false, errUnterminated
			}
			return match{}, false, ErrRowTooLarge
		}
		i += j
		if i+1 < len(buf) && buf[i+1] == g.enclosure {
			escaped = true
			i += 2
			continue
		}
		if i+1 == len(buf) && !eof {
			// the next byte decides between a closing and an escaped enclosure
			return match{}, false, ErrRowTooLarge
		}
		break
	}

	term, next, ok, err := g.matchTerminator(buf, i+1, eof)
	if err != nil || !ok {
		return match{}, false, err
	}
	return match{start: off + 1, end: i, escaped: escaped, term: term, next: next}, true, nil
}

func (g *grammar) matchUnquoted(buf []byte, off int, eof bool) (match, error) {
	i := off
	for i < len(buf) {
		c := g.classes[buf[i]]
		if c != classOther && c != classEnclosure {
			break
		}
		i++
	}
	term, next, ok, err := g.matchTerminator(buf, i, eof)
	if err != nil {
		return match{}, err
	}
	if !ok {
		return match{}, errUnterminated
	}
	return match{start: off, end: i, term: term, next: next}, nil
}

// matchTerminator matches a delimiter, line break or end of data at pos.
// ok is false when some other byte is there.
func (g *grammar) matchTerminator(buf []byte, pos int, eof bool) (terminator, int, bool, error) {
	if pos == len(buf) {
		if eof {
			return termEnd, pos, true, nil
		}
		return 0, 0, false, ErrRowTooLarge
	}
	switch g.classes[buf[pos]] {
	case classDelimiter:
		return termDelimiter, pos + 1, true, nil
	case classLF:
		return termLF, pos + 1, true, nil
	case classCR:
		if pos+1 < len(buf) {
			if buf[pos+1] == '\n' {
				return termCRLF, pos + 2, true, nil
			}
			return termCR, pos + 1, true, nil
		}
		if eof {
			return termCR, pos + 1, true, nil
		}
		// a lone CR at the window edge may be the first half of CRLF
		return 0, 0, false, ErrRowTooLarge
	default:
		return 0, 0, false, nil
	}
}
