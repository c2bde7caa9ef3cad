package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// TerminalReader decodes raw-mode terminal bytes into RawInput events.
type TerminalReader struct {
	r   *bufio.Reader
	now func() time.Time
}

// NewTerminalReader wraps r, typically os.Stdin after MakeRaw.
func NewTerminalReader(r io.Reader) *TerminalReader {
	return &TerminalReader{r: bufio.NewReader(r), now: time.Now}
}

// escapeCodes maps the final byte of CSI/SS3 sequences to key codes.
var escapeCodes = map[byte]string{
	'A': "arrow_up",
	'B': "arrow_down",
	'C': "arrow_right",
	'D': "arrow_left",
	'H': "home",
	'F': "end",
	'P': "f1",
}

// tildeCodes maps the numeric parameter of "ESC [ n ~" sequences to key codes.
var tildeCodes = map[string]string{
	"1":  "home",
	"7":  "home",
	"4":  "end",
	"8":  "end",
	"3":  "delete",
	"5":  "page_up",
	"6":  "page_down",
	"11": "f1",
}

// controlCodes maps single control bytes to key codes.
var controlCodes = map[rune]string{
	0x01: "ctrl_a",
	0x03: "ctrl_c",
	0x05: "ctrl_e",
	0x0e: "ctrl_n",
	0x10: "ctrl_p",
	'\t': "tab",
	'\r': "enter",
	'\n': "enter",
	0x08: "backspace",
	0x7f: "backspace",
}

// Read blocks until one event has been decoded.
func (t *TerminalReader) Read() (RawInput, error) {
	r, _, err := t.r.ReadRune()
	if err != nil {
		return RawInput{}, err
	}

	if r == 0x1b {
		code, err := t.readEscape()
		if err != nil {
			return RawInput{}, err
		}
		return t.stamp(Key(DeviceTerminal, code)), nil
	}

	if code, ok := controlCodes[r]; ok {
		return t.stamp(Key(DeviceTerminal, code)), nil
	}

	return t.stamp(Text(DeviceTerminal, r)), nil
}

func (t *TerminalReader) stamp(raw RawInput) RawInput {
	raw.Timestamp = t.now()
	return raw
}

// readEscape decodes the rest of an escape sequence. Unknown sequences decode
// to "escape" after their bytes have been consumed.
func (t *TerminalReader) readEscape() (string, error) {
	// A lone ESC has nothing buffered behind it
	if t.r.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := t.r.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	var param []byte
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			return "", err
		}
		if b >= '0' && b <= '9' || b == ';' {
			param = append(param, b)
			continue
		}
		if b == '~' {
			if code, ok := tildeCodes[string(param)]; ok {
				return code, nil
			}
			return "escape", nil
		}
		if code, ok := escapeCodes[b]; ok {
			return code, nil
		}
		return "escape", nil
	}
}

// RawMode puts stdin into raw mode and returns a function restoring it.
func RawMode() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
