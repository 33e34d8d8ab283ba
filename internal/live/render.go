package live

import (
	"fmt"
	"io"
	"strings"
)

// Terminal control sequences used by cmd/b64live.
const (
	EnterScreen = "\x1b[?1049h\x1b[?25l" // alternate screen, hide cursor
	LeaveScreen = "\x1b[?25h\x1b[?1049l" // show cursor, main screen
	ClearScreen = "\x1b[H\x1b[2J"
)

// ANSI styles.
const (
	reset     = "\x1b[0m"
	bold      = "\x1b[1m"
	italic    = "\x1b[3m"
	reverse   = "\x1b[7m"
	noReverse = "\x1b[27m"
	blue      = "\x1b[34m"
	cyan      = "\x1b[36m"
	green     = "\x1b[32m"
	yellow    = "\x1b[33m"
	red       = "\x1b[31m"
	gray      = "\x1b[90m"
)

// Title is the first line of every frame.
const Title = "Base64 Live Encoder/Decoder"

// InvalidPlaceholder replaces the decoded line when the input is
// not valid Base64.
const InvalidPlaceholder = "<invalid input>"

// Renderer draws a Model. Lines end in "\r\n" since the
// terminal is in raw mode.
//
// With Color unset no escape codes are written and the focused
// line is marked with "> " instead of reverse video.
type Renderer struct {
	Color bool
}

// style wraps s with the provided ANSI codes when color is
// enabled.
func (r Renderer) style(s string, codes ...string) string {
	if !r.Color {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(reset)
	return b.String()
}

// Render writes a full frame for m to w.
func (r Renderer) Render(w io.Writer, m *Model) error {
	var b strings.Builder
	b.WriteString(r.style(Title, bold, blue))
	b.WriteString("\r\n")
	b.WriteString(r.style(m.Status(), italic, gray))
	b.WriteString("\r\n")

	r.line(&b, m, FocusInput, r.style("Input string: ", bold, cyan), m.Input()+"⏎")
	r.line(&b, m, FocusEncoded, r.style("Base64 Encoded: ", bold, green), r.style(m.Encoded(), yellow))

	decoded, ok := m.Decoded()
	if ok {
		decoded = r.style(printable(decoded), yellow)
	} else {
		decoded = r.style(InvalidPlaceholder, red)
	}
	r.line(&b, m, FocusDecoded, r.style("Base64 Decoded: ", bold, green), decoded)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r Renderer) line(b *strings.Builder, m *Model, f Focus, label, value string) {
	focused := m.Focus() == f
	if !r.Color {
		if focused {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString(label)
	if focused && r.Color {
		fmt.Fprintf(b, "%s%s%s", reverse, value, noReverse)
	} else {
		b.WriteString(value)
	}
	b.WriteString("\r\n")
}

// printable replaces control characters, which would otherwise
// be interpreted by the terminal, with U+FFFD.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7f && r < 0xa0) {
			return '\ufffd'
		}
		return r
	}, s)
}
