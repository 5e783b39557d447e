package parser

// Option customizes a Parser.
type Option interface{ apply(p *Parser) }

// WithLogf sets a trace function that is called with every consumed token.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithDiagnostics sets a function that is called with any syntax error,
// formatted as "position: message", before Parse returns it.
func WithDiagnostics(diagf func(mess string, args ...interface{})) Option {
	return withDiagfn(diagf)
}

type withLogfn func(mess string, args ...interface{})
type withDiagfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(p *Parser) { p.toks.logfn = logfn }
func (diagf withDiagfn) apply(p *Parser) { p.diagf = diagf }
