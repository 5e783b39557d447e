package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(stdin string, args ...string) (res cliResult) {
	var stdout, stderr strings.Builder
	res.code = run(args, strings.NewReader(stdin), &stdout, &stderr)
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

// writeFiles writes name, content pairs into a new temporary directory,
// returning the path of each file.
func writeFiles(t *testing.T, nameContentPairs ...string) []string {
	dir := t.TempDir()
	var paths []string
	for i := 0; i+1 < len(nameContentPairs); i += 2 {
		path := filepath.Join(dir, nameContentPairs[i])
		require.NoError(t, ioutil.WriteFile(path, []byte(nameContentPairs[i+1]), 0644))
		paths = append(paths, path)
	}
	return paths
}

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

func TestLex(t *testing.T) {
	paths := writeFiles(t, "main.proc", "proc main in\n\t1 print // one\nend\n")
	mainPath := paths[0]

	res := runCLI("", "lex", mainPath)
	assert.Equal(t, cliResult{0, lines(
		mainPath+":1:1 Keyword(proc)",
		mainPath+":1:6 Identifier(main)",
		mainPath+":1:11 Keyword(in)",
		mainPath+":2:9 Integer(1)",
		mainPath+":2:11 Identifier(print)",
		mainPath+":3:1 Keyword(end)",
		mainPath+":4:1 EndOfInput(<NUL>)",
	), ""}, res)

	res = runCLI("", "lex", "--mnemonics=false", mainPath)
	assert.Equal(t, 0, res.code)
	assert.True(t, strings.HasSuffix(res.stdout, mainPath+":4:1 EndOfInput(\x00)\n"), "got %q", res.stdout)
}

func TestLex_stdin(t *testing.T) {
	res := runCLI("a\x1bb", "lex", "-")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, lines(
		"<unnamed *strings.Reader>:1:1 Identifier(a)",
		"<unnamed *strings.Reader>:1:2 Invalid(<ESC>)",
		"<unnamed *strings.Reader>:1:2 Identifier(b)",
		"<unnamed *strings.Reader>:1:3 EndOfInput(<NUL>)",
	), res.stdout)
}

func TestLex_missingFile(t *testing.T) {
	paths := writeFiles(t, "ok.proc", "x")
	missing := filepath.Join(filepath.Dir(paths[0]), "nope.proc")

	res := runCLI("", "lex", missing, paths[0])
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ERROR: cannot open "+missing+": ")
	assert.Equal(t, lines(
		paths[0]+":1:1 Identifier(x)",
		paths[0]+":1:2 EndOfInput(<NUL>)",
	), res.stdout)
}

func TestCom(t *testing.T) {
	paths := writeFiles(t,
		"add.proc", "proc add a b -- c in\n  +\nend\nproc main in 1 print end\n",
		"empty.proc", "// nothing yet\n",
	)
	add, empty := paths[0], paths[1]

	for _, jobs := range []string{"1", "2"} {
		res := runCLI("", "com", "-j", jobs, add, empty)
		assert.Equal(t, cliResult{0, lines(
			"# "+add,
			"proc add a b -- c @"+add+":1:6",
			"  @2:3 Intrinsic(Plus)",
			"proc main -- @"+add+":4:6",
			"  @4:14 PushInt(1)",
			"  @4:16 Intrinsic(Print)",
			"# "+empty,
		), ""}, res, "with %v jobs", jobs)
	}

	res := runCLI("", "compile", add)
	assert.Equal(t, 0, res.code, "compile is an alias")
}

func TestCom_stdin(t *testing.T) {
	res := runCLI("proc main in 1 print end\n", "com", "-j", "4", "-", "-")
	unit := lines(
		"# <unnamed *strings.Reader>",
		"proc main -- @<unnamed *strings.Reader>:1:6",
		"  @1:14 PushInt(1)",
		"  @1:16 Intrinsic(Print)",
	)
	assert.Equal(t, cliResult{0, unit + unit, ""}, res)
}

type panicReader struct{}

func (panicReader) Read([]byte) (int, error) { panic("stdin went away") }

func TestCom_panicStack(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"com", "-", "-"}, panicReader{}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), "ERROR: read stdin paniced: stdin went away\nPanic stack: "),
		"got %q", stderr.String())
	assert.Equal(t, 2, strings.Count(stderr.String(), "ERROR: read stdin paniced"))
}

func TestCom_sumExample(t *testing.T) {
	res := runCLI(lines(
		"// comments run to the end of the line",
		"proc sum int int -- int in",
		"\t+",
		"end",
		"",
		"proc main in",
		"\t34 35 + print",
		"end",
	), "com", "-")
	assert.Equal(t, 0, res.code, "stderr: %v", res.stderr)
	assert.Contains(t, res.stdout, "proc sum int int -- int @<unnamed *strings.Reader>:2:6\n")
	assert.Contains(t, res.stdout, "  @7:9 PushInt(34)\n")
	assert.Contains(t, res.stdout, "  @7:15 Intrinsic(Plus)\n")
}

func TestCom_syntaxError(t *testing.T) {
	paths := writeFiles(t,
		"bad.proc", "proc f in - end\n",
		"good.proc", "proc main in end\n",
		"worse.proc", "proc g in\n  dup\nend\n",
	)
	bad, good, worse := paths[0], paths[1], paths[2]

	res := runCLI("", "com", bad, good, worse)
	assert.Equal(t, cliResult{1,
		lines(
			"# "+good,
			"proc main -- @"+good+":1:6",
		),
		lines(
			"ERROR: "+bad+":1:11: Syntax Error: Unexpected Punctuation(--) in proc f",
			"ERROR: "+worse+":2:3: Syntax Error: Unexpected identifier Identifier(dup) in proc g",
		),
	}, res)
}

func TestCom_yaml(t *testing.T) {
	paths := writeFiles(t,
		"a.proc", "proc add a b -- c in 1 + end",
		"b.proc", "",
	)

	res := runCLI("", "com", "--format", "yaml", paths[0], paths[1])
	require.Equal(t, 0, res.code, "stderr: %v", res.stderr)

	dec := yaml.NewDecoder(strings.NewReader(res.stdout))
	var docs []yamlUnit
	for {
		var doc yamlUnit
		if err := dec.Decode(&doc); err != nil {
			break
		}
		docs = append(docs, doc)
	}
	assert.Equal(t, []yamlUnit{
		{File: paths[0], Procs: []yamlProc{{
			Name:    "add",
			Pos:     paths[0] + ":1:6",
			Inputs:  []string{"a", "b"},
			Outputs: []string{"c"},
			Body: []yamlOp{
				{"PushInt(1)", "Integer(1)", paths[0] + ":1:22"},
				{"Intrinsic(Plus)", "Operator(+)", paths[0] + ":1:24"},
			},
		}}},
		{File: paths[1], Procs: []yamlProc{}},
	}, docs)
	assert.Contains(t, res.stdout, "inputs: [a, b]")
}

func TestCom_config(t *testing.T) {
	paths := writeFiles(t,
		"goproc.toml", "[compile]\nformat = \"yaml\"\njobs = 2\n",
		"bad.toml", "[compile]\nformat = \"xml\"\n",
		"typo.toml", "[compil]\nformat = \"text\"\n",
		"main.proc", "proc main in end",
	)
	cfg, bad, typo, mainPath := paths[0], paths[1], paths[2], paths[3]

	res := runCLI("", "--config", cfg, "com", mainPath)
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "file: "+mainPath)

	res = runCLI("", "--config", cfg, "com", "--format", "text", mainPath)
	assert.Equal(t, 0, res.code)
	assert.Equal(t, lines("# "+mainPath, "proc main -- @"+mainPath+":1:6"), res.stdout, "flags override the config file")

	res = runCLI("", "--config", bad, "com", mainPath)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "ERROR: invalid format \"xml\", must be one of text, yaml\n", res.stderr)

	res = runCLI("", "--config", typo, "com", mainPath)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown keys compil")

	res = runCLI("", "--config", filepath.Join(filepath.Dir(mainPath), "missing.toml"), "com", mainPath)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ERROR: invalid config ")
}

func TestTrace(t *testing.T) {
	paths := writeFiles(t, "t.proc", "proc t in end")
	res := runCLI("", "--trace", "com", paths[0])
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "TRACE: "+paths[0]+": scan Keyword(proc) @"+paths[0]+":1:1\n")
	assert.Contains(t, res.stderr, "TRACE: "+paths[0]+": next Keyword(end) @"+paths[0]+":1:11\n")
}

func TestUsage(t *testing.T) {
	res := runCLI("", "help")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "lex")
	assert.Contains(t, res.stdout, "com")

	res = runCLI("", "com")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ERROR: requires at least 1 arg(s)")

	res = runCLI("", "frob")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `ERROR: unknown command "frob"`)
}

func TestLoadConfig_default(t *testing.T) {
	_, err := os.Stat(defaultConfigFile)
	require.True(t, os.IsNotExist(err), "tests expect no ./%v", defaultConfigFile)
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}
