package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jcorbin/goproc/internal/fileinput"
	"github.com/jcorbin/goproc/internal/lexer"
	"github.com/jcorbin/goproc/internal/logio"
)

type app struct {
	stdin io.Reader
	out   writeFlusher
	log   *logio.Logger

	cfgFile string
	flags   Config
	cfg     Config
}

func newRootCmd(app *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "goproc",
		Short: "Lex and parse programs in a small stack language",
		Long: `goproc is the front end of a compiler for a small concatenative language:
it turns source text into tokens (lex) or into procedure declarations (com).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.configure,
	}
	root.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default: ./"+defaultConfigFile+" when present)")
	root.PersistentFlags().BoolVar(&app.flags.Trace, "trace", false, "enable trace logging")
	root.AddCommand(newLexCmd(app), newComCmd(app))
	return root
}

// configure loads the config file, then overrides it with any flags given on
// the command line.
func (app *app) configure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(app.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		cfg.Trace = app.flags.Trace
	}
	if flags.Changed("mnemonics") {
		cfg.Lex.Mnemonics = app.flags.Lex.Mnemonics
	}
	if flags.Changed("format") {
		cfg.Compile.Format = app.flags.Compile.Format
	}
	if flags.Changed("jobs") {
		cfg.Compile.Jobs = app.flags.Compile.Jobs
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	app.cfg = cfg
	return nil
}

// open reads the named source file, or standard input for "-".
func (app *app) open(path string) (fileinput.Source, error) {
	if path == "-" {
		return fileinput.Read(app.stdin)
	}
	src, err := fileinput.Open(path)
	if err != nil {
		return src, fmt.Errorf("cannot open %v: %w", path, err)
	}
	return src, nil
}

// tracef returns a trace logging function prefixed by name, or nil if tracing
// is off.
func (app *app) tracef(name string) func(mess string, args ...interface{}) {
	if !app.cfg.Trace {
		return nil
	}
	logf := app.log.Leveledf("TRACE")
	return func(mess string, args ...interface{}) {
		logf(name+": "+mess, args...)
	}
}

func (app *app) lexerOptions(name string) []lexer.Option {
	if logf := app.tracef(name); logf != nil {
		return []lexer.Option{lexer.WithLogf(logf)}
	}
	return nil
}
