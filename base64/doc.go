// Package base64 implements the standard, padded Base64 encoding
// specified by RFC 4648.
//
// Only the standard alphabet with '=' padding is supported. The
// encoder never wraps lines and never fails.
//
// Comparison to encoding/base64
//
// Encoded output is identical to encoding/base64.StdEncoding.
//
// Decoding differs in three ways. First, this package rejects
// the newline characters '\r' and '\n' like any other character
// outside the alphabet. Second, it removes every trailing '='
// before validating the input, so
//
//	StdEncoding.DecodeString("Zig==")  // "f(", nil
//	StdEncoding.DecodeString("Zig===") // "f(", nil
//
// whereas encoding/base64 rejects both. Strict mode restores the
// exact padding requirement. Third, errors are reported by kind
// (ErrInputLength, ErrWrongPadding or InvalidByteError) rather
// than by offset, and no partial output is returned.
package base64
