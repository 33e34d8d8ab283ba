package base64

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrInputLength is returned when, after the trailing
	// padding is removed, the final group holds a single
	// character. One sextet cannot form a byte.
	ErrInputLength = errors.New("base64: invalid input length")

	// ErrWrongPadding is returned when a padding character
	// appears inside a complete group of four characters, or
	// when the final group is not followed by enough padding.
	ErrWrongPadding = errors.New("base64: wrong padding")
)

// InvalidByteError describes a byte that is not in Alphabet. It
// is PadChar only when '=' is followed by other characters in the
// final partial group, as in "Z=g=".
type InvalidByteError byte

func (e InvalidByteError) Error() string {
	if e < utf8.RuneSelf && strconv.IsPrint(rune(e)) {
		return fmt.Sprintf("base64: invalid byte %q", rune(e))
	}
	return fmt.Sprintf("base64: invalid byte 0x%02x", byte(e))
}
