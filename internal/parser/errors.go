package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcorbin/goproc/internal/fileinput"
	"github.com/jcorbin/goproc/internal/lexer"
)

// ErrReused is returned when Parse is called more than once on a Parser.
var ErrReused = errors.New("parser has already run")

// UnexpectedTokenError indicates that the parser found a token of the wrong
// kind, or a word that has no meaning in a procedure body.
type UnexpectedTokenError struct {
	// Expected lists the acceptable kinds, if the parser was expecting a
	// particular kind rather than reading a procedure body.
	Expected []lexer.Kind

	Got  lexer.Token
	Proc string
}

// InvalidTokenError indicates a byte sequence that the lexer did not recognize.
type InvalidTokenError struct {
	Got lexer.Token
}

// PrematureEndError indicates that input ended within a declaration.
type PrematureEndError struct {
	Expected []lexer.Kind
	Got      lexer.Token
}

// InvalidLiteralError indicates a literal that could not be converted to a
// value, such as an integer that overflows 64 bits.
type InvalidLiteralError struct {
	Got  lexer.Token
	Proc string
	Err  error
}

// UnsupportedTopLevelError indicates a token at the outermost scope that does
// not start a declaration.
type UnsupportedTopLevelError struct {
	Got lexer.Token
}

func (err UnexpectedTokenError) Error() string {
	if len(err.Expected) > 0 {
		return syntaxErrorf(err.Got, "Expected %v but got %v", kinds(err.Expected), err.Got)
	}
	what := ""
	switch err.Got.Kind {
	case lexer.Operator:
		what = "operator "
	case lexer.Identifier:
		what = "identifier "
	}
	return syntaxErrorf(err.Got, "Unexpected %v%v in proc %v", what, err.Got, err.Proc)
}

func (err InvalidTokenError) Error() string {
	return syntaxErrorf(err.Got, "Expected a valid token but got %v", err.Got)
}

func (err PrematureEndError) Error() string {
	if len(err.Expected) > 0 {
		return syntaxErrorf(err.Got, "Expected %v but got %v", kinds(err.Expected), err.Got)
	}
	return syntaxErrorf(err.Got, "Expected a valid token but got %v", err.Got)
}

func (err InvalidLiteralError) Error() string {
	return syntaxErrorf(err.Got, "Invalid literal %v in proc %v: %v", err.Got, err.Proc, err.Err)
}

func (err InvalidLiteralError) Unwrap() error { return err.Err }

func (err UnsupportedTopLevelError) Error() string {
	return syntaxErrorf(err.Got, "Unexpected %v, only proc declarations may appear at top level", err.Got)
}

func (err UnexpectedTokenError) Position() fileinput.Position { return err.Got.Pos }
func (err InvalidTokenError) Position() fileinput.Position { return err.Got.Pos }
func (err PrematureEndError) Position() fileinput.Position { return err.Got.Pos }
func (err InvalidLiteralError) Position() fileinput.Position { return err.Got.Pos }
func (err UnsupportedTopLevelError) Position() fileinput.Position { return err.Got.Pos }

// ErrorPosition returns the source position of any syntax error within err.
func ErrorPosition(err error) (fileinput.Position, bool) {
	var posErr interface {
		error
		Position() fileinput.Position
	}
	if errors.As(err, &posErr) {
		return posErr.Position(), true
	}
	return fileinput.Position{}, false
}

func syntaxErrorf(tok lexer.Token, mess string, args ...interface{}) string {
	return fmt.Sprintf("%v: Syntax Error: %v", tok.Pos, fmt.Sprintf(mess, args...))
}

func kinds(ks []lexer.Kind) string {
	if len(ks) == 1 {
		return ks[0].String()
	}
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
