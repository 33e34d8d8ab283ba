package live

import (
	"github.com/b64live/b64live/base64"
)

// Status lines shown above the three display lines.
const (
	StatusHelp       = "Use Up/Down to switch focus, Enter to copy focused line to clipboard, Esc to exit."
	StatusCopied     = "Copied to clipboard!"
	StatusCopyFailed = "Failed to copy to clipboard."
	StatusNothing    = "Nothing to copy: input is not valid Base64."
)

// Clipboard receives the text of the focused line.
type Clipboard interface {
	Copy(text string) error
}

// Model is the state of the live encoder/decoder.
type Model struct {
	enc    *base64.Encoding
	clip   Clipboard
	input  []rune
	focus  Focus
	status string
}

// NewModel returns an empty Model focused on the input line.
// Decoding uses enc.
func NewModel(enc *base64.Encoding, clip Clipboard) *Model {
	return &Model{
		enc:    enc,
		clip:   clip,
		status: StatusHelp,
	}
}

// Input returns the text typed so far.
func (m *Model) Input() string {
	return string(m.input)
}

// Focus returns the focused line.
func (m *Model) Focus() Focus {
	return m.focus
}

// Status returns the status line.
func (m *Model) Status() string {
	return m.status
}

// Encoded returns the Base64 encoding of the input.
func (m *Model) Encoded() string {
	return m.enc.EncodeText(m.Input())
}

// Decoded decodes the input as Base64 text. ok is false if the
// input is not valid Base64.
func (m *Model) Decoded() (text string, ok bool) {
	s, err := m.enc.DecodeText(m.Input())
	if err != nil {
		return "", false
	}
	return s, true
}

// Handle applies the key press k and reports whether the
// program should exit.
func (m *Model) Handle(k Key) (quit bool) {
	switch k.Kind {
	case KeyRune:
		if m.focus == FocusInput {
			m.input = append(m.input, k.Rune)
		}
	case KeyBackspace:
		if m.focus == FocusInput && len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case KeyUp, KeyDown:
		m.focus = m.focus.Move(k.Kind)
	case KeyEnter:
		m.copyFocused()
	case KeyEsc, KeyInterrupt:
		return true
	}
	return false
}

func (m *Model) copyFocused() {
	var text string
	switch m.focus {
	case FocusInput:
		text = m.Input()
	case FocusEncoded:
		text = m.Encoded()
	case FocusDecoded:
		s, ok := m.Decoded()
		if !ok {
			m.status = StatusNothing
			return
		}
		text = s
	}
	if err := m.clip.Copy(text); err != nil {
		m.status = StatusCopyFailed
		return
	}
	m.status = StatusCopied
}
