package parser

import (
	"strconv"

	"github.com/jcorbin/goproc/internal/fileinput"
	"github.com/jcorbin/goproc/internal/ir"
	"github.com/jcorbin/goproc/internal/lexer"
)

// Parser builds top level declarations from a token stream by recursive
// descent with a single token of lookahead. A Parser runs only once.
type Parser struct {
	toks  tokenStream
	tops  []ir.TopLevel
	diagf func(mess string, args ...interface{})
	ran   bool
}

// New creates a Parser that consumes tokens from src.
func New(src TokenSource, opts ...Option) *Parser {
	p := &Parser{toks: tokenStream{src: src}}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(p)
		}
	}
	return p
}

// Parse lexes and parses all of src.
func Parse(src fileinput.Source, opts ...Option) ([]ir.TopLevel, error) {
	return New(lexer.New(src), opts...).Parse()
}

// Parse consumes the entire token stream, returning all declarations in
// source order, or the first syntax error.
func (p *Parser) Parse() ([]ir.TopLevel, error) {
	if p.ran {
		return nil, ErrReused
	}
	p.ran = true
	for p.toks.peek().Kind != lexer.EndOfInput {
		if err := p.parseTopLevel(); err != nil {
			if p.diagf != nil {
				p.diagf("%v", err)
			}
			return nil, err
		}
	}
	return p.tops, nil
}

func (p *Parser) parseTopLevel() error {
	tok, err := p.requireValid()
	if err != nil {
		return err
	}
	if tok.Is(lexer.Keyword, "proc") {
		return p.parseProc()
	}
	return UnsupportedTopLevelError{tok}
}

// parseProc parses the rest of a procedure declaration after "proc":
//	NAME TYPE* [ "--" TYPE* ] "in" OP* "end"
func (p *Parser) parseProc() error {
	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return err
	}
	proc := &ir.Proc{Name: name}
	if err := p.parseSignature(proc); err != nil {
		return err
	}
	if err := p.parseBody(proc); err != nil {
		return err
	}
	p.tops = append(p.tops, proc)
	return nil
}

func (p *Parser) parseSignature(proc *ir.Proc) error {
	for {
		tok, err := p.expect(lexer.Keyword, lexer.Identifier, lexer.Punctuation)
		if err != nil {
			return err
		}
		switch {
		case tok.Kind == lexer.Identifier:
			proc.Inputs = append(proc.Inputs, tok)
		case tok.Is(lexer.Keyword, "in"):
			return nil
		case tok.Is(lexer.Punctuation, "--"):
			return p.parseOutputs(proc)
		default:
			return UnexpectedTokenError{Got: tok, Proc: proc.Name.Text}
		}
	}
}

func (p *Parser) parseOutputs(proc *ir.Proc) error {
	for {
		tok, err := p.expect(lexer.Keyword, lexer.Identifier)
		if err != nil {
			return err
		}
		switch {
		case tok.Kind == lexer.Identifier:
			proc.Outputs = append(proc.Outputs, tok)
		case tok.Is(lexer.Keyword, "in"):
			return nil
		default:
			return UnexpectedTokenError{Got: tok, Proc: proc.Name.Text}
		}
	}
}

func (p *Parser) parseBody(proc *ir.Proc) error {
	for {
		tok, err := p.requireValid()
		if err != nil {
			return err
		}
		if tok.Is(lexer.Keyword, "end") {
			return nil
		}
		op, err := p.parseOp(proc, tok)
		if err != nil {
			return err
		}
		proc.Body = append(proc.Body, op)
	}
}

func (p *Parser) parseOp(proc *ir.Proc, tok lexer.Token) (ir.Op, error) {
	if tok.Kind == lexer.Integer {
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return ir.Op{}, InvalidLiteralError{tok, proc.Name.Text, err}
		}
		return ir.PushInt(n, tok), nil
	}
	if in, defined := intrinsicWords[word{tok.Kind, tok.Text}]; defined {
		return ir.Intrinsically(in, tok), nil
	}
	return ir.Op{}, UnexpectedTokenError{Got: tok, Proc: proc.Name.Text}
}

// requireValid consumes the next token, which must be neither invalid nor
// the end of input.
func (p *Parser) requireValid() (lexer.Token, error) {
	switch tok := p.toks.next(); tok.Kind {
	case lexer.EndOfInput:
		return tok, PrematureEndError{Got: tok}
	case lexer.Invalid:
		return tok, InvalidTokenError{tok}
	default:
		return tok, nil
	}
}

// expect consumes the next token, which must have one of the given kinds.
func (p *Parser) expect(kinds ...lexer.Kind) (lexer.Token, error) {
	tok := p.toks.next()
	for _, kind := range kinds {
		if tok.Kind == kind {
			return tok, nil
		}
	}
	if tok.Kind == lexer.EndOfInput {
		return tok, PrematureEndError{Expected: kinds, Got: tok}
	}
	return tok, UnexpectedTokenError{Expected: kinds, Got: tok}
}
