package token

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// Scanner lazily produces the tokens of a document.
type Scanner struct {
	doc *PosDoc
	off int
	n   int
}

func Tokenize(d []byte) *Scanner {
	return &Scanner{doc: &PosDoc{d: d}}
}

func TokenizeString(s string) *Scanner {
	return Tokenize([]byte(s))
}

// isSpace matches the JavaScript \s class: Unicode white space minus NEL,
// plus the byte order mark.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\ufeff'
}

func (s *Scanner) Next() (Token, bool) {
	d := s.doc.d
	for s.off < len(d) {
		r, sz := utf8.DecodeRune(d[s.off:])
		if !isSpace(r) {
			break
		}
		if r == '\n' {
			s.doc.nl(s.off)
		}
		s.off += sz
	}
	if s.off == len(d) {
		return Token{}, false
	}
	start := s.off
	for s.off < len(d) {
		r, sz := utf8.DecodeRune(d[s.off:])
		if isSpace(r) {
			break
		}
		s.off += sz
	}
	s.n++
	return Token{Text: string(d[start:s.off]), Pos: s.doc.Pos(start)}, true
}

// Count returns the number of tokens produced so far.
func (s *Scanner) Count() int {
	return s.n
}

// All adapts a Tokens source to a range-over-func sequence.  Iterating
// consumes the source.
func All(ts Tokens) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			t, ok := ts.Next()
			if !ok {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Texts drains ts and returns the text of every remaining token.
func Texts(ts Tokens) []string {
	var res []string
	for t := range All(ts) {
		res = append(res, t.Text)
	}
	return res
}

type sliceTokens struct {
	toks []string
	i    int
}

// FromStrings returns a Tokens source over already split tokens, without
// positions.
func FromStrings(toks ...string) Tokens {
	return &sliceTokens{toks: toks}
}

func (s *sliceTokens) Next() (Token, bool) {
	if s.i >= len(s.toks) {
		return Token{}, false
	}
	t := Token{Text: s.toks[s.i]}
	s.i++
	return t, true
}
