package base64

// Alphabet is the standard Base64 alphabet. The character at
// index i encodes the sextet i.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

// PadChar is the padding character. It is never assigned a
// sextet.
const PadChar = '='

// invalid is returned by revLookup for bytes outside Alphabet.
const invalid = 0xff

// Char returns the Base64 character for the sextet v.
//
// Only the low six bits of v are used.
func Char(v byte) byte {
	return lookup(uint(v & 0x3f))
}

// Sextet returns the 6-bit value of the Base64 character c.
//
// It reports false for every byte that is not in Alphabet,
// including PadChar, control characters and non-ASCII bytes.
func Sextet(c byte) (byte, bool) {
	v := revLookup(uint(c))
	if v == invalid {
		return 0, false
	}
	return v, true
}

// lookup converts the 6-bit value c to its corresponding
// Base64 character.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func lookup(c uint) byte {
	// Start with 'A' and move the shift each time c crosses into
	// the next range of the alphabet:
	//    [26, 51] -> 'a'-26 = 'A'+6
	//    [52, 61] -> '0'-52 = 'A'+6-75
	//    62       -> '+'-62 = 'A'+6-75-15
	//    63       -> '/'-63 = 'A'+6-75-15+3
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 15
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// revLookup converts the Base64 character c to its 6-bit
// binary value.
//
// If the character is not in Alphabet revLookup returns
// invalid.
func revLookup(c uint) byte {
	// NB. This function is written like this so that the
	// compiler will inline it.

	// switch {
	// case c >= 'A' && c <= 'Z':
	//     s = -65
	// case c >= 'a' && c <= 'z'
	//     s = -71
	// case c >= '0' && c <= '9'
	//     s = 4
	// case c == '+':
	//     s = 19
	// case c == '/':
	//     s = 16
	// }
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// s == 0 iff c is not in the alphabet, in which case the
	// result is forced to 0xff.
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}
