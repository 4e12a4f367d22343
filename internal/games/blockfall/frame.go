package blockfall

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Glyph classifies a cell for display.
type Glyph uint8

const (
	GlyphEmpty  Glyph = iota // value 0
	GlyphFilled              // value 1
	GlyphPiece               // any other tag
)

// GlyphOf returns the display class of a cell value.
func GlyphOf(c Cell) Glyph {
	switch c {
	case CellEmpty:
		return GlyphEmpty
	case CellFilled:
		return GlyphFilled
	}
	return GlyphPiece
}

// GlyphSet holds the two-column strings drawn for each glyph class.
type GlyphSet struct {
	Empty  string
	Filled string
	Piece  string
}

// DefaultGlyphs returns the classic glyphs.
func DefaultGlyphs() GlyphSet {
	return GlyphSet{Empty: "  ", Filled: "**", Piece: "[]"}
}

// For returns the string drawn for g.
func (gs GlyphSet) For(g Glyph) string {
	switch g {
	case GlyphFilled:
		return gs.Filled
	case GlyphPiece:
		return gs.Piece
	}
	return gs.Empty
}

const (
	wall = "||"
	rule = "=="
)

// Frame is an immutable copy of the grid taken during RenderFrame.
type Frame struct {
	Width     int
	Height    int
	Cells     []Cell
	ActiveTag Cell // CellEmpty when no piece is active
}

// Cell returns the value at (x, y), or CellEmpty outside the frame.
func (f Frame) Cell(x, y int) Cell {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return CellEmpty
	}
	return f.Cells[y*f.Width+x]
}

// Glyph returns the display class at (x, y).
func (f Frame) Glyph(x, y int) Glyph {
	return GlyphOf(f.Cell(x, y))
}

// FrameSize returns the dimensions in terminal columns and rows of the
// bordered frame for a width x height board.
func FrameSize(width, height int) (cols, rows int) {
	return len(wall)*2 + len(rule)*width, height + 2
}

// Size returns the bordered frame's dimensions in terminal columns and rows.
func (f Frame) Size() (cols, rows int) {
	return FrameSize(f.Width, f.Height)
}

// Draw paints the bordered frame onto dst with its top-left corner at (x, y).
func (f Frame) Draw(dst *core.Screen, x, y int, gs GlyphSet) {
	border := wall + strings.Repeat(rule, f.Width) + wall
	dst.DrawText(x, y, border, core.ColorBorder)
	for row := 0; row < f.Height; row++ {
		col := dst.DrawText(x, y+1+row, wall, core.ColorBorder)
		for cx := 0; cx < f.Width; cx++ {
			c := f.Cell(cx, row)
			col = dst.DrawText(col, y+1+row, gs.For(GlyphOf(c)), f.colorOf(c))
		}
		dst.DrawText(col, y+1+row, wall, core.ColorBorder)
	}
	dst.DrawText(x, y+1+f.Height, border, core.ColorBorder)
}

func (f Frame) colorOf(c Cell) core.Color {
	switch {
	case c == CellEmpty:
		return core.ColorDefault
	case c == f.ActiveTag:
		return core.ColorActive
	case c == CellFilled:
		return core.ColorFilled
	}
	return core.ColorPiece
}

// Text renders the bordered frame as plain lines joined by "\n".
func (f Frame) Text(gs GlyphSet) string {
	cols, rows := f.Size()
	scr := core.NewScreen(cols, rows)
	f.Draw(scr, 0, 0, gs)
	return scr.String()
}

// String renders the frame with the default glyphs.
func (f Frame) String() string {
	return f.Text(DefaultGlyphs())
}
