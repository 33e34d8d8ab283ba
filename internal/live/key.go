package live

import "unicode/utf8"

// KeyKind is the kind of a decoded key press.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyInterrupt
	KeyUp
	KeyDown
	keyUnknown
)

// Key is a single key press. Rune is only set for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

const esc = 0x1b

// ParseKeys decodes the bytes read from a terminal in raw mode.
//
// Printable UTF-8 characters become KeyRune. A lone ESC byte is
// KeyEsc; CSI and SS3 sequences are reduced to KeyUp and KeyDown
// or dropped. Other control bytes and ill-formed UTF-8 are
// dropped.
func ParseKeys(p []byte) []Key {
	var keys []Key
	for len(p) > 0 {
		var k Key
		n := 1
		switch c := p[0]; {
		case c == esc:
			k, n = parseEscape(p)
		case c == '\r' || c == '\n':
			k = Key{Kind: KeyEnter}
		case c == 0x7f || c == '\b':
			k = Key{Kind: KeyBackspace}
		case c == 0x03:
			k = Key{Kind: KeyInterrupt}
		case c < 0x20:
			k = Key{Kind: keyUnknown}
		case c < utf8.RuneSelf:
			k = Key{Kind: KeyRune, Rune: rune(c)}
		default:
			r, size := utf8.DecodeRune(p)
			n = size
			if r == utf8.RuneError && size == 1 {
				k = Key{Kind: keyUnknown}
			} else {
				k = Key{Kind: KeyRune, Rune: r}
			}
		}
		if k.Kind != keyUnknown {
			keys = append(keys, k)
		}
		p = p[n:]
	}
	return keys
}

// parseEscape decodes the sequence starting with ESC at p[0]
// and returns the key along with the number of bytes consumed.
func parseEscape(p []byte) (Key, int) {
	if len(p) < 2 {
		return Key{Kind: KeyEsc}, 1
	}
	switch p[1] {
	case 'O':
		if len(p) < 3 {
			return Key{Kind: keyUnknown}, len(p)
		}
		return arrow(p[2]), 3
	case '[':
		// Parameter and intermediate bytes run until a final
		// byte in [0x40, 0x7e].
		for i := 2; i < len(p); i++ {
			if p[i] >= 0x40 && p[i] <= 0x7e {
				if i == 2 {
					return arrow(p[i]), 3
				}
				return Key{Kind: keyUnknown}, i + 1
			}
		}
		return Key{Kind: keyUnknown}, len(p)
	}
	return Key{Kind: KeyEsc}, 1
}

func arrow(c byte) Key {
	switch c {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	}
	return Key{Kind: keyUnknown}
}
