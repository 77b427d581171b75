package token

import "fmt"

type Token struct {
	Text string
	Pos  *Pos
}

func (t Token) String() string {
	if t.Pos == nil {
		return fmt.Sprintf("%q", t.Text)
	}
	return fmt.Sprintf("%q at %s", t.Text, t.Pos)
}

// Tokens is a forward only source of tokens.  Next returns false once the
// source is exhausted and keeps returning false afterwards.
type Tokens interface {
	Next() (Token, bool)
}
