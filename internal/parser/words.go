package parser

import (
	"github.com/jcorbin/goproc/internal/ir"
	"github.com/jcorbin/goproc/internal/lexer"
)

type word struct {
	kind lexer.Kind
	text string
}

// intrinsicWords maps every body word that the grammar understands so far to
// its intrinsic; the rest of the ir.Intrinsic catalogue is not yet spelled.
var intrinsicWords = map[word]ir.Intrinsic{
	{lexer.Operator, "+"}:       ir.Plus,
	{lexer.Identifier, "print"}: ir.Print,
}
