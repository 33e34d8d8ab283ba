// Command b64live is a live Base64 encoder/decoder for the
// terminal.
//
// Every keystroke re-encodes the input line and decodes it as
// Base64. Up/Down move the focus between the input, encoded and
// decoded lines, Enter copies the focused line to the clipboard
// (OSC 52) and Esc exits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"

	"github.com/b64live/b64live/base64"
	"github.com/b64live/b64live/internal/live"
)

var version = "dev"

func main() {
	noColor := flag.Bool("no-color", false, "Disable colored output")
	strict := flag.Bool("strict", false, "Require exactly the canonical number of '=' when decoding")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	enc := base64.StdEncoding
	if *strict {
		enc = enc.Strict()
	}
	if err := run(enc, !*noColor); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func run(enc *base64.Encoding, color bool) error {
	in := int(syscall.Stdin)
	if !term.IsTerminal(in) {
		return errors.New("b64live requires an interactive terminal")
	}
	out := os.Stdout

	oldState, err := term.MakeRaw(in)
	if err != nil {
		return fmt.Errorf("terminal not ready: %w", err)
	}
	restore := leaveFunc(out, func() error { return term.Restore(in, oldState) })

	// Ctrl-C arrives as a key in raw mode; signals from outside
	// still need the terminal restored.
	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()
	defer func() { signal.Stop(sigc); close(done); restore() }()

	fmt.Fprint(out, live.EnterScreen)

	m := live.NewModel(enc, live.OSC52{W: out})
	r := live.Renderer{Color: color && term.IsTerminal(int(out.Fd()))}
	return loop(os.Stdin, out, m, r)
}

// leaveFunc returns a function that leaves the alternate screen on
// out and then calls restore. Only the first call has any effect, so
// the signal handler and the deferred cleanup may both call it.
func leaveFunc(out io.Writer, restore func() error) func() {
	return sync.OnceFunc(func() {
		fmt.Fprint(out, live.LeaveScreen)
		_ = restore()
	})
}

// loop redraws the screen and applies key presses read from in
// until the model asks to quit or in is exhausted.
func loop(in io.Reader, out io.Writer, m *live.Model, r live.Renderer) error {
	buf := make([]byte, 256)
	for {
		if _, err := io.WriteString(out, live.ClearScreen); err != nil {
			return err
		}
		if err := r.Render(out, m); err != nil {
			return err
		}

		n, err := in.Read(buf)
		for _, k := range live.ParseKeys(buf[:n]) {
			if m.Handle(k) {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}
