package fileinput

import (
	"fmt"
	"unicode"
)

// TabStop is the column interval that a tab character advances to.
const TabStop = 8

// Position names a line and column in a Source.
// Lines and columns are 1-based.
type Position struct {
	Name   string
	Line   int
	Column int
}

// Start returns the position of the first byte of the named input.
func Start(name string) Position { return Position{Name: name, Line: 1, Column: 1} }

func (pos Position) String() string { return fmt.Sprintf("%v:%v:%v", pos.Name, pos.Line, pos.Column) }

// Advance moves pos past the byte b:
// - line feed starts the next line
// - tab moves to the next tab stop
// - other control bytes take no space
// - anything else takes one column
func (pos *Position) Advance(b byte) {
	switch {
	case b == '\n':
		pos.Line++
		pos.Column = 1
	case b == '\t':
		pos.Column = (pos.Column-1)/TabStop*TabStop + TabStop + 1
	case unicode.IsControl(rune(b)):
	default:
		pos.Column++
	}
}
