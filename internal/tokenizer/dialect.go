package tokenizer

import (
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// Token kinds produced by the dialect tokenizer.
const (
	TokenDelimiter = "Delimiter" // one of the candidate delimiters
	TokenEnclosure = "Enclosure" // the enclosure character
	TokenNewline   = "Newline"   // \r\n, \n or \r
	TokenText      = "Text"      // any other run of characters
)

// NewDialectTokenizer returns a shape-core tokenizer used to guess the
// dialect of a sample. Unlike the row grammar it does not pair enclosures;
// callers track quoting from the Enclosure tokens.
//
// Matchers are ordered so that CRLF wins over CR and LF, and text runs come last.
func NewDialectTokenizer(candidates []rune, enclosure rune) shapetokenizer.Tokenizer {
	stop := map[rune]bool{'\r': true, '\n': true, enclosure: true}
	matchers := []shapetokenizer.Matcher{
		shapetokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
		shapetokenizer.StringMatcherFunc(TokenNewline, "\n"),
		shapetokenizer.StringMatcherFunc(TokenNewline, "\r"),
		shapetokenizer.CharMatcherFunc(TokenEnclosure, enclosure),
	}
	for _, c := range candidates {
		stop[c] = true
		matchers = append(matchers, shapetokenizer.CharMatcherFunc(TokenDelimiter, c))
	}
	matchers = append(matchers, textMatcher(stop))
	return shapetokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// textMatcher matches a non-empty run of runes outside stop.
func textMatcher(stop map[rune]bool) shapetokenizer.Matcher {
	return func(stream shapetokenizer.Stream) *shapetokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || stop[r] {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return shapetokenizer.NewToken(TokenText, value)
	}
}
