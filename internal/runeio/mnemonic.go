package runeio

import "strings"

// c0Names are the classic ASCII control mnemonics, indexed by code.
var c0Names = [32]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "NL", "VT", "NP", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// c1Names are the ISO-8859 extended control mnemonics, indexed by code-0x80.
var c1Names = [32]string{
	"PAD", "HOP", "BPH", "NBH", "IND", "NEL", "SSA", "ESA",
	"HTS", "HTJ", "VTS", "PLD", "PLU", "RI", "SS2", "SS3",
	"DCS", "PU1", "PU2", "STS", "CCH", "MW", "SPA", "EPA",
	"SOS", "SGCI", "SCI", "CSI", "ST", "OSC", "PM", "APC",
}

// Mnemonic returns the bracketed name of a control byte, like "<NUL>" or
// "<ESC>"; ok is false for any byte that is not a control.
func Mnemonic(b byte) (name string, ok bool) {
	switch {
	case b < 0x20:
		return "<" + c0Names[b] + ">", true
	case b == 0x7f:
		return "<DEL>", true
	case 0x80 <= b && b <= 0x9f:
		return "<" + c1Names[b-0x80] + ">", true
	}
	return "", false
}

// Escape replaces every control byte in s with its Mnemonic.
func Escape(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if _, ok := Mnemonic(s[i]); ok {
			break
		}
	}
	if i == len(s) {
		return s
	}
	var sb strings.Builder
	sb.WriteString(s[:i])
	for ; i < len(s); i++ {
		if name, ok := Mnemonic(s[i]); ok {
			sb.WriteString(name)
		} else {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
