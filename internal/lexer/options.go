package lexer

// Option customizes a Lexer.
type Option interface{ apply(lex *Lexer) }

// WithLogf sets a trace function that is called with every scanned token.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(lex *Lexer) { lex.logfn = logfn }
