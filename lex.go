package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/goproc/internal/lexer"
	"github.com/jcorbin/goproc/internal/runeio"
)

func newLexCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex FILE...",
		Short: "Print the tokens of each file",
		Long: `Print every token of each file, one per line, as "POSITION Kind(text)",
through the final EndOfInput token.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				app.log.ErrorIf(app.lex(path))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&app.flags.Lex.Mnemonics, "mnemonics", true, "render control bytes in token text like <NUL>")
	return cmd
}

func (app *app) lex(path string) error {
	src, err := app.open(path)
	if err != nil {
		return err
	}
	lex := lexer.New(src, app.lexerOptions(src.Name)...)
	for {
		tok := lex.NextToken()
		text := tok.Text
		if app.cfg.Lex.Mnemonics {
			text = runeio.Escape(text)
		}
		if _, err := fmt.Fprintf(app.out, "%v %v(%v)\n", tok.Pos, tok.Kind, text); err != nil {
			return err
		}
		if tok.Kind == lexer.EndOfInput {
			return nil
		}
	}
}
