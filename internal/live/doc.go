// Package live holds the state and rendering of the b64live
// terminal program: an input line that is encoded and decoded on
// every keystroke, three focusable lines and clipboard copy.
//
// Nothing here touches the terminal directly; cmd/b64live feeds
// raw input bytes to ParseKeys and writes Render's output.
package live
