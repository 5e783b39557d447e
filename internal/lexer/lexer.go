package lexer

import (
	"github.com/jcorbin/goproc/internal/fileinput"
)

// Lexer scans one Source into Tokens on demand. The zero Lexer is at
// end-of-input; use New.
type Lexer struct {
	src   []byte
	cur   int // index of the next byte to consume
	pos   fileinput.Position
	logfn func(mess string, args ...interface{})
}

// New creates a Lexer positioned at the start of src.
func New(src fileinput.Source, opts ...Option) *Lexer {
	lex := &Lexer{
		src: src.Data,
		pos: src.Start(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(lex)
		}
	}
	return lex
}

// NextToken scans and returns the next token. Once the input is exhausted,
// every call returns an EndOfInput token at the final position.
func (lex *Lexer) NextToken() Token {
	lex.skipBlank()
	tok := lex.scan()
	if lex.logfn != nil {
		lex.logfn("scan %v @%v", tok, tok.Pos)
	}
	return tok
}

// Tokens scans all remaining tokens, up to and including EndOfInput.
func (lex *Lexer) Tokens() (toks []Token) {
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == EndOfInput {
			return toks
		}
	}
}

func (lex *Lexer) scan() Token {
	start := lex.pos
	c := lex.peek(0)
	switch {
	case lex.cur >= len(lex.src):
		return Token{EndOfInput, endText, start}

	case isIdentByte(c):
		text := lex.take(isIdentByte)
		if IsKeyword(text) {
			return Token{Keyword, text, start}
		}
		return Token{Identifier, text, start}

	case isDigit(c):
		return Token{Integer, lex.take(isDigit), start}

	case c == '+':
		lex.advance()
		return Token{Operator, "+", start}

	case c == '-':
		// NOTE a lone "-" still reads as the signature separator
		if lex.peek(1) == '-' {
			lex.advance()
		}
		lex.advance()
		return Token{Punctuation, "--", start}

	default:
		lex.advance()
		return Token{Invalid, string([]byte{c}), start}
	}
}

// skipBlank skips any interleaving of whitespace and line comments.
func (lex *Lexer) skipBlank() {
	for {
		for lex.cur < len(lex.src) && isSpace(lex.src[lex.cur]) {
			lex.advance()
		}
		if lex.peek(0) != '/' || lex.peek(1) != '/' {
			return
		}
		for lex.cur < len(lex.src) && lex.src[lex.cur] != '\n' {
			lex.advance()
		}
	}
}

// take consumes the maximal run of bytes matching class.
func (lex *Lexer) take(class func(c byte) bool) string {
	start := lex.cur
	for lex.cur < len(lex.src) && class(lex.src[lex.cur]) {
		lex.advance()
	}
	return string(lex.src[start:lex.cur])
}

// peek returns the byte offset bytes past the cursor, or 0 past the end.
func (lex *Lexer) peek(offset int) byte {
	if i := lex.cur + offset; i < len(lex.src) {
		return lex.src[i]
	}
	return 0
}

func (lex *Lexer) advance() {
	if lex.cur < len(lex.src) {
		lex.pos.Advance(lex.src[lex.cur])
		lex.cur++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
