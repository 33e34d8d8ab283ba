package base64

import "bytes"

// Decode decodes src, writing at most DecodedLen(len(src)) bytes
// to dst, and returns the number of bytes written.
//
// Every trailing '=' is removed before src is validated. The
// remaining input is then checked in order for:
//
//  1. a final group of exactly one character (ErrInputLength),
//  2. a '=' inside a complete group of four (ErrWrongPadding),
//  3. too little padding after a final group of two or three
//     characters, or in strict mode any amount other than the
//     exact one (ErrWrongPadding),
//  4. a character outside Alphabet, including a '=' left in the
//     final partial group (InvalidByteError).
//
// Decode stops at the first failed check. On error it returns 0
// and the contents of dst are unspecified.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	src, trailing := trimPadding(src)

	rem := len(src) % 4
	if rem == 1 {
		return 0, ErrInputLength
	}
	if bytes.IndexByte(src[:len(src)-rem], PadChar) >= 0 {
		return 0, ErrWrongPadding
	}
	want := padLen(rem)
	if trailing < want || (e.strict && trailing != want) {
		return 0, ErrWrongPadding
	}

	var n int
	var v [4]byte
	for len(src) >= 4 {
		if err := sextets(v[:], src[:4]); err != nil {
			return 0, err
		}
		dst[n+0] = v[0]<<2 | v[1]>>4
		dst[n+1] = v[1]<<4 | v[2]>>2
		dst[n+2] = v[2]<<6 | v[3]
		src = src[4:]
		n += 3
	}

	switch len(src) {
	case 3:
		if err := sextets(v[:3], src); err != nil {
			return 0, err
		}
		dst[n+0] = v[0]<<2 | v[1]>>4
		dst[n+1] = v[1]<<4 | v[2]>>2
		n += 2
	case 2:
		if err := sextets(v[:2], src); err != nil {
			return 0, err
		}
		dst[n] = v[0]<<2 | v[1]>>4
		n++
	}
	return n, nil
}

// AppendDecode appends the decoded form of src to dst and
// returns the extended buffer. On error dst is returned
// unchanged.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	out := make([]byte, DecodedLen(len(src)))
	n, err := e.Decode(out, src)
	if err != nil {
		return dst, err
	}
	return append(dst, out[:n]...), nil
}

// DecodeString returns the bytes represented by the Base64
// string s.
//
// On error DecodeString returns a nil slice; no partially
// decoded data is exposed.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := e.Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// trimPadding removes every trailing PadChar from src and
// returns the remainder along with the number removed.
func trimPadding(src []byte) ([]byte, int) {
	end := len(src)
	for end > 0 && src[end-1] == PadChar {
		end--
	}
	return src[:end], len(src) - end
}

// padLen returns the number of padding characters that
// complete a final group of rem characters.
func padLen(rem int) int {
	switch rem {
	case 2:
		return 2
	case 3:
		return 1
	default:
		return 0
	}
}

// sextets translates each character in src to its 6-bit value,
// stopping at the first character outside Alphabet.
func sextets(dst, src []byte) error {
	for i, c := range src {
		v := revLookup(uint(c))
		if v == invalid {
			return InvalidByteError(c)
		}
		dst[i] = v
	}
	return nil
}
