package base64

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type encPair struct {
	name   string
	enc    *Encoding
	stdlib *base64.Encoding
}

var encs = []encPair{
	{"StdEncoding", StdEncoding, base64.StdEncoding},
	{"Strict", StdEncoding.Strict(), base64.StdEncoding.Strict()},
}

// TestEncodeStdlib tests Encode against the stdlib.
func TestEncodeStdlib(t *testing.T) {
	for _, e := range encs {
		t.Run(e.name, func(t *testing.T) {
			testStdlibEncode(t, e)
		})
	}
}

func testStdlibEncode(t *testing.T, p encPair) {
	e := p.enc
	stdlib := p.stdlib

	src := make([]byte, 4096)
	want := make([]byte, e.EncodedLen(len(src)))
	got := make([]byte, stdlib.EncodedLen(len(src)))
	if len(want) != len(got) {
		t.Fatalf("expected %d, got %d", len(want), len(got))
	}
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		stdlib.Encode(want, src[:i])
		want := want[:stdlib.EncodedLen(i)]

		e.Encode(got, src[:i])
		got := got[:e.EncodedLen(i)]
		if !bytes.Equal(want, got) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, got))
		}
	}
}

// TestDecodeStdlib tests Decode against the stdlib for canonical
// input.
func TestDecodeStdlib(t *testing.T) {
	for _, e := range encs {
		t.Run(e.name, func(t *testing.T) {
			testStdlibDecode(t, e)
		})
	}
}

func testStdlibDecode(t *testing.T, p encPair) {
	src := make([]byte, 1024)
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		s := p.stdlib.EncodeToString(src[:i])
		want, err := p.stdlib.DecodeString(s)
		if err != nil {
			t.Fatalf("#%d: stdlib: %v", i, err)
		}
		got, err := p.enc.DecodeString(s)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if !bytes.Equal(want, got) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, got))
		}
	}
}

func TestCmp(t *testing.T) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			x := uint(i)
			y := uint(j)

			var want byte
			if x >= y {
				want = 0xff
			}

			// x >= y -> 0xff
			// x <  y -> 0x00
			got := byte((y - x - 1) >> 8)
			if got != want {
				t.Fatalf("expected %2x, got %2x", want, got)
			}
		}
	}
}

// TestLookup tests lookup and revLookup against Alphabet.
func TestLookup(t *testing.T) {
	if len(Alphabet) != 64 {
		t.Fatalf("len(Alphabet) = %d", len(Alphabet))
	}
	for i := 0; i < len(Alphabet); i++ {
		b64 := lookup(uint(i))
		if b64 != Alphabet[i] {
			t.Fatalf("#%d: expected %q, got %q", i, Alphabet[i], b64)
		}
		bin := revLookup(uint(b64))
		if bin != byte(i) {
			t.Fatalf("#%d: expected %d got %d", i, i, bin)
		}
	}
}

func TestRevLookup(t *testing.T) {
	var m [256]byte
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = byte(i)
	}
	for i := 0; i < 256; i++ {
		c := m[i]
		ok := c != invalid
		switch bin := revLookup(uint(i)); {
		case ok && bin != c:
			t.Fatalf("#%d: expected %d got %d", i, c, bin)
		case !ok && bin != invalid:
			t.Fatalf("#%d: got %#2x", i, bin)
		}
	}
}

func TestSextet(t *testing.T) {
	for i := 0; i < 64; i++ {
		c := Char(byte(i))
		v, ok := Sextet(c)
		if !ok || v != byte(i) {
			t.Fatalf("#%d: Sextet(%q) = %d, %t", i, c, v, ok)
		}
	}
	for _, c := range []byte{'=', '!', ' ', '\n', '\r', '-', '_', '@', '[', '`', '{', 0x00, 0x7f, 0x80, 0xff} {
		if v, ok := Sextet(c); ok {
			t.Fatalf("Sextet(%#02x) = %d, true", c, v)
		}
	}
}

func TestChar(t *testing.T) {
	// Only the low six bits are used.
	if got := Char(64 + 1); got != 'B' {
		t.Fatalf("expected 'B', got %q", got)
	}
	if got := Char(0xff); got != '/' {
		t.Fatalf("expected '/', got %q", got)
	}
}

func TestEncodedLen(t *testing.T) {
	for n := 0; n < 100; n++ {
		want := 4 * ((n + 2) / 3)
		if got := EncodedLen(n); got != want {
			t.Fatalf("EncodedLen(%d): expected %d, got %d", n, want, got)
		}
	}
}

func TestAppend(t *testing.T) {
	enc := StdEncoding.AppendEncode([]byte("x:"), []byte("foo"))
	if want := "x:Zm9v"; string(enc) != want {
		t.Fatalf("AppendEncode: expected %q, got %q", want, enc)
	}
	dec, err := StdEncoding.AppendDecode([]byte("x:"), []byte("Zm9v"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "x:foo"; string(dec) != want {
		t.Fatalf("AppendDecode: expected %q, got %q", want, dec)
	}
	dec, err = StdEncoding.AppendDecode([]byte("x:"), []byte("Zm9"))
	if err != ErrWrongPadding {
		t.Fatalf("expected %v, got %v", ErrWrongPadding, err)
	}
	if string(dec) != "x:" {
		t.Fatalf("AppendDecode modified dst on error: %q", dec)
	}
}

var sinkB byte

func BenchmarkLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkB = lookup(uint(i % len(Alphabet)))
	}
}

func BenchmarkRevLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := Alphabet[i%len(Alphabet)]
		sinkB = revLookup(uint(c))
	}
}

var sinkS string

func BenchmarkEncodeToString(b *testing.B) {
	src := make([]byte, 8192)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		sinkS = StdEncoding.EncodeToString(src)
	}
}

func BenchmarkDecodeString(b *testing.B) {
	s := StdEncoding.EncodeToString(make([]byte, 8192))
	b.SetBytes(int64(len(s)))
	for i := 0; i < b.N; i++ {
		if _, err := StdEncoding.DecodeString(s); err != nil {
			b.Fatal(err)
		}
	}
}
