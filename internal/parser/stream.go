package parser

import "github.com/jcorbin/goproc/internal/lexer"

// TokenSource supplies tokens one at a time; *lexer.Lexer implements it.
// After the end of input, a TokenSource must keep returning EndOfInput.
type TokenSource interface {
	NextToken() lexer.Token
}

// tokenStream adds one token of lookahead to a TokenSource.
type tokenStream struct {
	src    TokenSource
	peeked lexer.Token
	filled bool
	logfn  func(mess string, args ...interface{})
}

// next consumes and returns the lookahead token if any, otherwise the next
// token from the source.
func (ts *tokenStream) next() (tok lexer.Token) {
	if ts.filled {
		tok, ts.filled = ts.peeked, false
	} else {
		tok = ts.src.NextToken()
	}
	if ts.logfn != nil {
		ts.logfn("next %v @%v", tok, tok.Pos)
	}
	return tok
}

// peek returns the token that next will return, without consuming it.
func (ts *tokenStream) peek() lexer.Token {
	if !ts.filled {
		ts.peeked, ts.filled = ts.src.NextToken(), true
	}
	return ts.peeked
}
