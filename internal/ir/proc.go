package ir

import (
	"github.com/jcorbin/goproc/internal/fileinput"
	"github.com/jcorbin/goproc/internal/lexer"
)

// TopLevel is a declaration at the outermost scope of a source unit.
// Procedures are the only kind so far.
type TopLevel interface {
	Pos() fileinput.Position
	topLevel()
}

// Proc is a procedure declaration: a name, a signature of type names, and a
// body of ops. The terminating "end" is not part of Body.
type Proc struct {
	Name    lexer.Token
	Inputs  []lexer.Token
	Outputs []lexer.Token
	Body    []Op
}

func (*Proc) topLevel() {}

// Pos returns the position of the procedure's name.
func (proc *Proc) Pos() fileinput.Position { return proc.Name.Pos }

// Signature renders the procedure's stack effect like "a b -- c".
func (proc *Proc) Signature() string {
	var buf []byte
	for _, in := range proc.Inputs {
		buf = append(buf, in.Text...)
		buf = append(buf, ' ')
	}
	buf = append(buf, "--"...)
	for _, out := range proc.Outputs {
		buf = append(buf, ' ')
		buf = append(buf, out.Text...)
	}
	return string(buf)
}
