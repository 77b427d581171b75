// Package token splits raw input into whitespace delimited tokens.
//
// [Tokenize] returns a [Scanner], a lazy forward only [Tokens] source.  Each
// maximal run of non whitespace characters is one [Token], carrying its
// [Pos] in the input.  Scanners are not restartable and must not be shared
// between concurrent consumers.
package token
