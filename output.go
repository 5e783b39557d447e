package main

import (
	"bufio"
	"io"
	"io/ioutil"
)

type writeFlusher interface {
	io.Writer
	Flush() error
}

// newWriteFlusher buffers w, unless it is already buffered or in memory.
func newWriteFlusher(w io.Writer) writeFlusher {
	if w == ioutil.Discard {
		return nopFlusher{w}
	}
	if wf, is := w.(writeFlusher); is {
		return wf
	}
	// in memory buffers, like bytes.Buffer and strings.Builder
	type buffer interface {
		io.Writer
		Len() int
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }
