package lexer

import (
	"fmt"

	"github.com/jcorbin/goproc/internal/fileinput"
)

// Kind identifies the lexical class of a Token.
type Kind uint8

const (
	Invalid Kind = iota
	EndOfInput
	Integer
	Identifier
	Keyword
	Operator
	Punctuation

	// reserved for string literals; never produced yet
	DoubleQuotedString
	SingleQuotedString
)

var kindNames = [...]string{
	Invalid:            "Invalid",
	EndOfInput:         "EndOfInput",
	Integer:            "Integer",
	Identifier:         "Identifier",
	Keyword:            "Keyword",
	Operator:           "Operator",
	Punctuation:        "Punctuation",
	DoubleQuotedString: "DoubleQuotedString",
	SingleQuotedString: "SingleQuotedString",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit along with the position of its first byte.
type Token struct {
	Kind Kind
	Text string
	Pos  fileinput.Position
}

// endText is the text carried by every EndOfInput token.
const endText = "\x00"

// String renders the token like "Identifier(main)".
func (tok Token) String() string { return fmt.Sprintf("%v(%v)", tok.Kind, tok.Text) }

// Is returns true if tok has the given kind and text.
func (tok Token) Is(kind Kind, text string) bool { return tok.Kind == kind && tok.Text == text }

// keywords are the reserved words of the language.
var keywords = map[string]struct{}{
	"proc": {},
	"in":   {},
	"end":  {},
}

// IsKeyword returns true if s is a reserved word.
func IsKeyword(s string) bool {
	_, is := keywords[s]
	return is
}
