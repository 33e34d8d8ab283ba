package base64

import (
	"golang.org/x/text/encoding/unicode"
)

// EncodeText returns the Base64 encoding of the UTF-8 bytes of
// s using StdEncoding.
func EncodeText(s string) string {
	return StdEncoding.EncodeText(s)
}

// DecodeText decodes s using StdEncoding and interprets the
// result as UTF-8. See (*Encoding).DecodeText.
func DecodeText(s string) (string, error) {
	return StdEncoding.DecodeText(s)
}

// EncodeText returns the Base64 encoding of the UTF-8 bytes of
// s.
func (e *Encoding) EncodeText(s string) string {
	return e.EncodeToString([]byte(s))
}

// DecodeText decodes the Base64 string s and interprets the
// decoded bytes as UTF-8.
//
// Ill-formed UTF-8 is not an error: each maximal ill-formed
// subsequence is replaced with U+FFFD. Only Base64 errors are
// returned.
func (e *Encoding) DecodeText(s string) (string, error) {
	b, err := e.DecodeString(s)
	if err != nil {
		return "", err
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
