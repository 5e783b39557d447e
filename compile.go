package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/goproc/internal/fileinput"
	"github.com/jcorbin/goproc/internal/ir"
	"github.com/jcorbin/goproc/internal/lexer"
	"github.com/jcorbin/goproc/internal/panicerr"
	"github.com/jcorbin/goproc/internal/parser"
)

func newComCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "com FILE...",
		Aliases: []string{"compile"},
		Short:   "Parse each file and dump its procedures",
		Long: `Parse each file into procedure declarations and dump them in order.
Files are parsed concurrently; any syntax error is reported with its position,
and makes the exit status non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.compile(args)
		},
	}
	cmd.Flags().StringVar(&app.flags.Compile.Format, "format", "text", "dump format: text or yaml")
	cmd.Flags().IntVarP(&app.flags.Compile.Jobs, "jobs", "j", 0, "number of files to parse at once (default: one per CPU)")
	return cmd
}

// unit is one source file being compiled.
type unit struct {
	path  string
	name  string
	src   *fileinput.Source
	tops  []ir.TopLevel
	diags []string
	err   error
}

func (app *app) compile(paths []string) error {
	units := make([]unit, len(paths))
	var eg errgroup.Group
	eg.SetLimit(app.cfg.Compile.Jobs)
	stdin, stdinErr := app.readStdin(paths)
	for i, path := range paths {
		u := &units[i]
		u.path = path
		if path == "-" {
			if stdinErr != nil {
				u.err = stdinErr
				continue
			}
			u.src = stdin
		}
		eg.Go(func() error {
			u.err = panicerr.Recover("compile "+u.path, u.parse(app))
			return nil
		})
	}
	eg.Wait()

	dump := newDumper(app.cfg.Compile.Format, app.out)
	for i := range units {
		u := &units[i]
		for _, diag := range u.diags {
			app.log.Errorf("%v", diag)
		}
		if u.err != nil {
			if panicerr.IsPanic(u.err) {
				app.log.Errorf("%+v", u.err)
			} else if len(u.diags) == 0 {
				app.log.ErrorIf(u.err)
			}
			continue
		}
		if err := dump.unit(u.name, u.tops); err != nil {
			return err
		}
	}
	return dump.close()
}

// readStdin reads standard input once if any path is "-", so that every such
// unit shares the same source.
func (app *app) readStdin(paths []string) (*fileinput.Source, error) {
	for _, path := range paths {
		if path == "-" {
			var src fileinput.Source
			err := panicerr.Recover("read stdin", func() (err error) {
				src, err = app.open(path)
				return err
			})
			return &src, err
		}
	}
	return nil, nil
}

// parse returns a function that reads and parses the unit's file.
func (u *unit) parse(app *app) func() error {
	return func() error {
		if u.src == nil {
			src, err := app.open(u.path)
			if err != nil {
				return err
			}
			u.src = &src
		}
		src := *u.src
		u.name = src.Name
		opts := []parser.Option{
			parser.WithDiagnostics(func(mess string, args ...interface{}) {
				u.diags = append(u.diags, fmt.Sprintf(mess, args...))
			}),
		}
		if logf := app.tracef(src.Name); logf != nil {
			opts = append(opts, parser.WithLogf(logf))
		}
		var err error
		u.tops, err = parser.New(lexer.New(src, app.lexerOptions(src.Name)...), opts...).Parse()
		return err
	}
}
