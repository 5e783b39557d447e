package main

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jcorbin/goproc/internal/ir"
	"github.com/jcorbin/goproc/internal/lexer"
)

// dumper writes the declarations of each compiled unit.
type dumper interface {
	unit(name string, tops []ir.TopLevel) error
	close() error
}

func newDumper(format string, out io.Writer) dumper {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		return yamlDumper{enc}
	}
	return &textDumper{out: out}
}

// textDumper writes a heading per unit, a line per procedure, and an indented
// line per op:
//
//	# main.proc
//	proc add a b -- c @main.proc:1:6
//	  @2:3 Intrinsic(Plus)
type textDumper struct {
	out io.Writer
	buf bytes.Buffer
}

func (dump *textDumper) unit(name string, tops []ir.TopLevel) error {
	fmt.Fprintf(&dump.buf, "# %v\n", name)
	for _, top := range tops {
		switch top := top.(type) {
		case *ir.Proc:
			dump.proc(top)
		default:
			return fmt.Errorf("cannot dump %T", top)
		}
	}
	_, err := dump.buf.WriteTo(dump.out)
	return err
}

func (dump *textDumper) proc(proc *ir.Proc) {
	fmt.Fprintf(&dump.buf, "proc %v %v @%v\n", proc.Name.Text, proc.Signature(), proc.Pos())
	for _, op := range proc.Body {
		fmt.Fprintf(&dump.buf, "  @%v:%v %v\n", op.Token.Pos.Line, op.Token.Pos.Column, op)
	}
}

func (dump *textDumper) close() error { return nil }

type yamlDumper struct{ enc *yaml.Encoder }

type yamlUnit struct {
	File  string     `yaml:"file"`
	Procs []yamlProc `yaml:"procs"`
}

type yamlProc struct {
	Name    string   `yaml:"name"`
	Pos     string   `yaml:"pos"`
	Inputs  []string `yaml:"inputs,flow"`
	Outputs []string `yaml:"outputs,flow"`
	Body    []yamlOp `yaml:"body"`
}

type yamlOp struct {
	Op    string `yaml:"op"`
	Token string `yaml:"token"`
	Pos   string `yaml:"pos"`
}

func (dump yamlDumper) unit(name string, tops []ir.TopLevel) error {
	doc := yamlUnit{File: name, Procs: []yamlProc{}}
	for _, top := range tops {
		proc, ok := top.(*ir.Proc)
		if !ok {
			return fmt.Errorf("cannot dump %T", top)
		}
		yp := yamlProc{
			Name:    proc.Name.Text,
			Pos:     proc.Pos().String(),
			Inputs:  tokenTexts(proc.Inputs),
			Outputs: tokenTexts(proc.Outputs),
			Body:    make([]yamlOp, len(proc.Body)),
		}
		for i, op := range proc.Body {
			yp.Body[i] = yamlOp{op.String(), op.Token.String(), op.Token.Pos.String()}
		}
		doc.Procs = append(doc.Procs, yp)
	}
	return dump.enc.Encode(doc)
}

func (dump yamlDumper) close() error { return dump.enc.Close() }

func tokenTexts(toks []lexer.Token) []string {
	texts := make([]string, len(toks))
	for i, tok := range toks {
		texts[i] = tok.Text
	}
	return texts
}
