package command

import "unicode/utf8"

// KeyKind tags which variant of Key is populated.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyEsc
	KeyBackspace
	KeyEnter
	KeyTab
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// Key is the decoder's input: either a printable rune or one of the
// control/navigation keys the terminal back-end recognizes from raw
// escape sequences.
type Key struct {
	Kind KeyKind
	Rune rune
}

// FromANSI decodes the first key encoded at the start of buf, terminal-raw
// bytes as produced by a VT220-ish backend. It returns the decoded Key and
// the number of bytes consumed; consumed is 0 if buf is empty.
//
// Recognized escape sequences: the xterm CSI forms for the arrow keys
// (`\x1b[A/B/C/D`). Anything else starting with ESC alone is KeyEsc.
func FromANSI(buf []byte) (key Key, consumed int) {
	if len(buf) == 0 {
		return Key{}, 0
	}

	switch buf[0] {
	case '\x1b':
		if len(buf) >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return Key{Kind: KeyArrowUp}, 3
			case 'B':
				return Key{Kind: KeyArrowDown}, 3
			case 'C':
				return Key{Kind: KeyArrowRight}, 3
			case 'D':
				return Key{Kind: KeyArrowLeft}, 3
			}
		}
		return Key{Kind: KeyEsc}, 1
	case '\r', '\n':
		return Key{Kind: KeyEnter}, 1
	case '\t':
		return Key{Kind: KeyTab}, 1
	case 127, 8:
		return Key{Kind: KeyBackspace}, 1
	}

	r, size := utf8.DecodeRune(buf)
	return Key{Kind: KeyRune, Rune: r}, size
}
