package blockfall

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestGlyphOf(t *testing.T) {
	tests := []struct {
		cell Cell
		want Glyph
	}{
		{CellEmpty, GlyphEmpty},
		{CellFilled, GlyphFilled},
		{2, GlyphPiece},
		{MaxTag, GlyphPiece},
	}

	for _, tt := range tests {
		if got := GlyphOf(tt.cell); got != tt.want {
			t.Errorf("GlyphOf(%d) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestFrameTextEmpty(t *testing.T) {
	f := NewBoard(2, 1).RenderFrame()

	want := "||====||\n" +
		"||    ||\n" +
		"||====||"
	if got := f.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestFrameTextWithPiece(t *testing.T) {
	b := NewBoard(4, 4)
	b.Spawn(KindBlock)
	f := b.RenderFrame()

	want := "||========||\n" +
		"||        ||\n" +
		"||        ||\n" +
		"||    [][]||\n" +
		"||    [][]||\n" +
		"||========||"
	if got := f.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestFrameCustomGlyphs(t *testing.T) {
	b := NewBoard(2, 4)
	b.Spawn(KindBar)
	f := b.RenderFrame()

	gs := GlyphSet{Empty: "..", Filled: "##", Piece: "@@"}
	want := "||====||\n" +
		"||..@@||\n" +
		"||..@@||\n" +
		"||..@@||\n" +
		"||..@@||\n" +
		"||====||"
	if got := f.Text(gs); got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestFrameSize(t *testing.T) {
	cols, rows := NewBoard(10, 20).RenderFrame().Size()
	if cols != 24 || rows != 22 {
		t.Errorf("Size() = %d x %d, want 24 x 22", cols, rows)
	}
}

func TestFrameDrawColors(t *testing.T) {
	b := NewBoard(4, 4)
	b.Spawn(KindBlock)
	b.RenderFrame()
	b.Spawn(KindBar)
	f := b.RenderFrame()

	scr := core.NewScreen(f.Size())
	f.Draw(scr, 0, 0, DefaultGlyphs())

	if c := scr.GetCell(0, 0).Color; c != core.ColorBorder {
		t.Errorf("border color = %v", c)
	}
	// The block rests on the floor, its right column is not covered by the bar.
	if c := scr.GetCell(8, 3).Color; c != core.ColorPiece {
		t.Errorf("inactive piece color = %v, want ColorPiece", c)
	}
	// The bar (active) starts in column 2, rows 0-3.
	if c := scr.GetCell(6, 1).Color; c != core.ColorActive {
		t.Errorf("active piece color = %v, want ColorActive", c)
	}
	if c := scr.GetCell(2, 1).Color; c != core.ColorDefault {
		t.Errorf("empty cell color = %v, want ColorDefault", c)
	}
}

func TestFrameCellOutOfRange(t *testing.T) {
	f := NewBoard(2, 2).RenderFrame()
	if f.Cell(-1, 0) != CellEmpty || f.Cell(0, 5) != CellEmpty {
		t.Error("out-of-range frame reads should be empty")
	}
}

func TestFrameSizeMatchesRenderedFrame(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {10, 20}, {17, 9}} {
		cols, rows := FrameSize(dims[0], dims[1])
		f := NewBoard(dims[0], dims[1]).RenderFrame()
		lines := strings.Split(f.String(), "\n")
		if len(lines) != rows || len(lines[0]) != cols {
			t.Errorf("FrameSize(%d,%d) = %dx%d, rendered %dx%d",
				dims[0], dims[1], cols, rows, len(lines[0]), len(lines))
		}
	}
}
