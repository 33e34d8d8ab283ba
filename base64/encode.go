package base64

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// A final group of one byte produces two characters and two
// padding characters; a final group of two bytes produces three
// characters and one padding character.
func (e *Encoding) Encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	_ = dst[EncodedLen(len(src))-1]

	for len(src) >= 3 {
		dst[0] = lookup(uint(src[0] >> 2))
		dst[1] = lookup(uint((src[0]<<4 | src[1]>>4) & 0x3f))
		dst[2] = lookup(uint((src[1]<<2 | src[2]>>6) & 0x3f))
		dst[3] = lookup(uint(src[2] & 0x3f))
		src = src[3:]
		dst = dst[4:]
	}

	// Missing bytes are treated as zero.
	switch len(src) {
	case 2:
		dst[0] = lookup(uint(src[0] >> 2))
		dst[1] = lookup(uint((src[0]<<4 | src[1]>>4) & 0x3f))
		dst[2] = lookup(uint((src[1] << 2) & 0x3f))
		dst[3] = PadChar
	case 1:
		dst[0] = lookup(uint(src[0] >> 2))
		dst[1] = lookup(uint((src[0] << 4) & 0x3f))
		dst[2] = PadChar
		dst[3] = PadChar
	}
}

// AppendEncode appends the Base64 encoding of src to dst and
// returns the extended buffer.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := EncodedLen(len(src))
	if cap(dst)-len(dst) < n {
		buf := make([]byte, len(dst), len(dst)+n)
		copy(buf, dst)
		dst = buf
	}
	out := dst[len(dst) : len(dst)+n]
	e.Encode(out, src)
	return dst[:len(dst)+n]
}

// EncodeToString returns the Base64 encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}
