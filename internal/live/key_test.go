package live

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKeys(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []Key
	}{
		{"empty", "", nil},
		{"ascii", "ab=", []Key{{KeyRune, 'a'}, {KeyRune, 'b'}, {KeyRune, '='}}},
		{"utf8", "é\U0001F603", []Key{{KeyRune, 'é'}, {KeyRune, '\U0001F603'}}},
		{"enter", "\r\n", []Key{{Kind: KeyEnter}, {Kind: KeyEnter}}},
		{"backspace", "\x7f\b", []Key{{Kind: KeyBackspace}, {Kind: KeyBackspace}}},
		{"ctrl-c", "\x03", []Key{{Kind: KeyInterrupt}}},
		{"esc", "\x1b", []Key{{Kind: KeyEsc}}},
		{"csi arrows", "\x1b[A\x1b[B", []Key{{Kind: KeyUp}, {Kind: KeyDown}}},
		{"ss3 arrows", "\x1bOA\x1bOB", []Key{{Kind: KeyUp}, {Kind: KeyDown}}},
		{"other csi", "\x1b[C\x1b[1;2Ax", []Key{{KeyRune, 'x'}}},
		{"truncated csi", "x\x1b[1", []Key{{KeyRune, 'x'}}},
		{"alt key", "\x1bx", []Key{{Kind: KeyEsc}, {KeyRune, 'x'}}},
		{"controls", "\x00\t\x1fa", []Key{{KeyRune, 'a'}}},
		{"ill-formed", "\xffa\xc3", []Key{{KeyRune, 'a'}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseKeys([]byte(tc.in))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("(-want +got)\n%s", diff)
			}
		})
	}
}
