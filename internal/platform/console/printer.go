package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

const clearScreen = "\x1b[H\x1b[2J"

// Printer writes whole frames to a terminal, redrawing from scratch every time.
type Printer struct {
	w       io.Writer
	glyphs  blockfall.GlyphSet
	clear   bool
	newline string
}

// NewPrinter creates a printer. In raw mode the terminal no longer
// translates "\n", so lines end in "\r\n" and the screen is cleared before
// each frame.
func NewPrinter(w io.Writer, gs blockfall.GlyphSet, raw bool) *Printer {
	p := &Printer{w: w, glyphs: gs, newline: "\n"}
	if raw {
		p.clear = true
		p.newline = "\r\n"
	}
	return p
}

// Print writes one frame followed by a line break.
func (p *Printer) Print(f blockfall.Frame) error {
	var sb strings.Builder
	if p.clear {
		sb.WriteString(clearScreen)
	}
	sb.WriteString(strings.ReplaceAll(f.Text(p.glyphs), "\n", p.newline))
	sb.WriteString(p.newline)

	if _, err := io.WriteString(p.w, sb.String()); err != nil {
		return fmt.Errorf("console: print frame: %w", err)
	}
	return nil
}
