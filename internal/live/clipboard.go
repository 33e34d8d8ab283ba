package live

import (
	"io"

	"github.com/b64live/b64live/base64"
)

// OSC52 copies text to the system clipboard through the
// terminal's OSC 52 escape sequence.
type OSC52 struct {
	W io.Writer
}

var _ Clipboard = OSC52{}

// Copy writes the OSC 52 sequence for text to W.
func (c OSC52) Copy(text string) error {
	_, err := io.WriteString(c.W, osc52(text))
	return err
}

// osc52 returns ESC ] 52 ; c ; <base64 text> BEL.
func osc52(text string) string {
	return "\x1b]52;c;" + base64.EncodeText(text) + "\a"
}
