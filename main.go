package main

import (
	"io"
	"os"

	"github.com/jcorbin/goproc/internal/logio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one goproc command line, returning the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := &app{
		stdin: stdin,
		out:   newWriteFlusher(stdout),
		log:   logio.New(stderr),
	}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	app.log.ErrorIf(cmd.Execute())
	app.log.ErrorIf(app.out.Flush())
	return app.log.ExitCode()
}
