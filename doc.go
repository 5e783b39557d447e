/* Command goproc is the front end of a compiler for a small stack language
in the FORTH family.

Programs are sequences of words that implicitly share a data stack. The only
top level form is a procedure:

	// comments run to the end of the line
	proc sum int int -- int in
		+
	end

	proc main in
		34 35 + print
	end

A procedure declares its name, the types it takes from the stack, and (after
"--") the types it leaves there; "in" starts the body and "end" closes it. The
reserved words are proc, in, and end.

So far a body may hold decimal integer literals, which push themselves, and
the intrinsics "+" and "print". Calls to other procedures, control flow, and
the rest of the intrinsic set are not yet part of the grammar; see internal/ir
for the full instruction catalogue.

Usage:

	goproc lex FILE...   print every token, with its position
	goproc com FILE...   parse and dump procedures (--format text|yaml)
	goproc help          describe commands and flags

A FILE of "-" reads standard input. Settings may also come from a TOML file
given by --config, or ./goproc.toml when present; flags win over the file:

	trace = false
	[lex]
	mnemonics = true
	[compile]
	format = "text"
	jobs = 4

The exit status is non-zero if any file could not be read or parsed.
*/
package main
