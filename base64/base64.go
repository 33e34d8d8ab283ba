package base64

// StdEncoding is the standard, padded Base64 encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
//
// When decoding, StdEncoding trims every trailing '=' before
// validating the input, so "Zig==" and "Zig===" decode to the
// same bytes. Use StdEncoding.Strict() to reject surplus
// padding.
var StdEncoding = &Encoding{}

// Encoding is the standard Base64 encoding with '=' padding.
//
// An Encoding is immutable and safe for concurrent use.
type Encoding struct {
	strict bool
}

// Strict returns an identical Encoding that operates in "strict"
// mode, where the input must end with exactly the number of
// padding characters required by its final group: none for a
// complete group, two for a group of two characters and one for
// a group of three characters.
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// IsStrict reports whether e was created by Strict.
func (e *Encoding) IsStrict() bool {
	return e.strict
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
//
// It is always 4*ceil(n/3).
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoded
// form of n bytes of Base64-encoded data.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// EncodedLen is the same as the package-level EncodedLen.
func (e *Encoding) EncodedLen(n int) int {
	return EncodedLen(n)
}

// DecodedLen is the same as the package-level DecodedLen.
func (e *Encoding) DecodedLen(n int) int {
	return DecodedLen(n)
}

// EncodeToString returns the Base64 encoding of src using
// StdEncoding.
func EncodeToString(src []byte) string {
	return StdEncoding.EncodeToString(src)
}

// DecodeString returns the bytes represented by the Base64
// string s using StdEncoding.
func DecodeString(s string) ([]byte, error) {
	return StdEncoding.DecodeString(s)
}
