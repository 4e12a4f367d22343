package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal owns the process's controlling terminal for a console game:
// raw mode on stdin so single keys arrive without Enter, and the key
// reader on top of it.
type Terminal struct {
	*KeyReader

	fd    int
	state *term.State
}

// OpenTerminal puts in into raw mode when it is a terminal and starts
// reading keys from it. Regular files and devices such as /dev/null are
// read without cancellation, since they cannot be polled.
func OpenTerminal(in *os.File) (*Terminal, error) {
	t := &Terminal{fd: int(in.Fd())}
	tty := term.IsTerminal(t.fd)
	if tty {
		state, err := term.MakeRaw(t.fd)
		if err != nil {
			return nil, fmt.Errorf("console: raw mode: %w", err)
		}
		t.state = state
	}

	var src io.Reader = in
	if !tty && !isPipe(in) {
		src = struct{ io.Reader }{in}
	}
	kr, err := NewKeyReader(src)
	if err != nil {
		_ = t.restore()
		return nil, err
	}
	t.KeyReader = kr
	return t, nil
}

func isPipe(f *os.File) bool {
	st, err := f.Stat()
	return err == nil && st.Mode()&os.ModeNamedPipe != 0
}

// Raw reports whether the terminal is in raw mode.
func (t *Terminal) Raw() bool {
	return t.state != nil
}

// Close stops reading keys and restores the terminal state.
func (t *Terminal) Close() error {
	err := t.KeyReader.Close()
	if rerr := t.restore(); rerr != nil {
		return rerr
	}
	return err
}

func (t *Terminal) restore() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("console: restore terminal: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions of f, or ok=false when f is not a terminal.
func Size(f *os.File) (cols, rows int, ok bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return cols, rows, true
}
