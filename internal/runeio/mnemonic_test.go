package runeio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/goproc/internal/runeio"
)

func TestMnemonic(t *testing.T) {
	for _, tc := range []struct {
		b    byte
		name string
		ok   bool
	}{
		{0x00, "<NUL>", true},
		{0x09, "<HT>", true},
		{0x1b, "<ESC>", true},
		{0x1f, "<US>", true},
		{0x7f, "<DEL>", true},
		{0x85, "<NEL>", true},
		{0x9f, "<APC>", true},
		{' ', "", false},
		{'a', "", false},
		{0xa0, "", false},
	} {
		name, ok := runeio.Mnemonic(tc.b)
		assert.Equal(t, tc.ok, ok, "ok for %#02x", tc.b)
		assert.Equal(t, tc.name, name, "name for %#02x", tc.b)
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "proc", runeio.Escape("proc"))
	assert.Equal(t, "<NUL>", runeio.Escape("\x00"))
	assert.Equal(t, "a<ESC>[0m<NL>", runeio.Escape("a\x1b[0m\n"))
}
