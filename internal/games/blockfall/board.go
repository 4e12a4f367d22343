package blockfall

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrCapacity is returned by Spawn once every identity tag is in use.
var ErrCapacity = errors.New("blockfall: board is full, no identity tags left")

// Cell is the value of one board position: 0 when empty, otherwise the
// identity tag of the last piece stamped there.
type Cell uint8

const (
	// CellEmpty marks an unoccupied position.
	CellEmpty Cell = 0
	// CellFilled is the tag value the renderer shows as settled blocks.
	// It is also the tag of the last piece a full board can hold.
	CellFilled Cell = 1
	// MaxTag is the tag of the first piece spawned.
	MaxTag Cell = 255
)

// Capacity is the number of pieces a board can hold, one per non-zero tag.
const Capacity = int(MaxTag)

// TagFor returns the identity tag for the piece at index i.
// Tags count down from MaxTag so the newest pieces have the smallest tags.
func TagFor(i int) Cell {
	return MaxTag - Cell(i)
}

// Direction is a horizontal move applied to the active piece.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// DirectionFor maps an input action to a move. Non-movement actions report false.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return 0, false
}

// Board is the play field: a grid of cells plus every piece spawned so far.
// Pieces are never removed. The most recently spawned piece is the active
// one and is the only piece player input moves.
//
// Board is not safe for concurrent use; see Session.
type Board struct {
	width   int
	height  int
	cells   []Cell
	pieces  []Kind
	anchors []core.Point
	owners  *intmap.Map[Cell, int]
}

// NewBoard creates an empty board. It panics if either dimension is below 1.
func NewBoard(width, height int) *Board {
	if width < 1 || height < 1 {
		panic("blockfall: board dimensions must be positive")
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		owners: intmap.New[Cell, int](Capacity),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of pieces spawned so far.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Spawn appends a piece anchored at the top center and makes it active.
// It returns the new piece's index, ErrUnknownKind for a kind outside the
// known set, or ErrCapacity when the board is full.
func (b *Board) Spawn(k Kind) (int, error) {
	if k >= kindCount {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	if len(b.pieces) >= Capacity {
		return 0, ErrCapacity
	}
	i := len(b.pieces)
	b.pieces = append(b.pieces, k)
	b.anchors = append(b.anchors, core.Pt(b.width/2, 0))
	b.owners.Put(TagFor(i), i)
	return i, nil
}

// Active returns the index of the active piece.
func (b *Board) Active() (int, bool) {
	if len(b.pieces) == 0 {
		return 0, false
	}
	return len(b.pieces) - 1, true
}

// Piece returns the kind and anchor of the piece at index i.
func (b *Board) Piece(i int) (Kind, core.Point, bool) {
	if i < 0 || i >= len(b.pieces) {
		return 0, core.Point{}, false
	}
	return b.pieces[i], b.anchors[i], true
}

// ApplyInput moves the active piece one column, keeping its anchor on the
// board. It reports false when there is no active piece.
// Collisions are not checked here; stamping resolves overlaps.
func (b *Board) ApplyInput(d Direction) bool {
	i, ok := b.Active()
	if !ok {
		return false
	}
	a := &b.anchors[i]
	a.X = core.Clamp(a.X+int(d), 0, b.width-1)
	return true
}

// Cell returns the value at (x, y). Coordinates are clamped onto the board.
func (b *Board) Cell(x, y int) Cell {
	p := core.ClampPoint(core.Pt(x, y), b.width, b.height)
	return b.cells[b.index(p.X, p.Y)]
}

// Owner returns the index of the piece whose tag occupies (x, y).
func (b *Board) Owner(x, y int) (int, bool) {
	c := b.Cell(x, y)
	if c == CellEmpty {
		return 0, false
	}
	return b.owners.Get(c)
}

// RenderFrame rebuilds the grid from the pieces, advances every piece one
// step, and returns the grid as it was stamped. The frame therefore shows
// positions from before the step.
func (b *Board) RenderFrame() Frame {
	b.stamp()
	b.Tick()

	active := CellEmpty
	if i, ok := b.Active(); ok {
		active = TagFor(i)
	}
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Frame{
		Width:     b.width,
		Height:    b.height,
		Cells:     cells,
		ActiveTag: active,
	}
}

// Tick lets every piece fall one row unless it would hit the floor or a cell
// of the current grid held by another tag. Pieces are evaluated in spawn
// order against the same grid, so a piece resting on one that moves this
// tick only follows on the next.
func (b *Board) Tick() {
	scratch := make([]Cell, len(b.cells))
	for i, k := range b.pieces {
		tag := TagFor(i)
		for j, c := range b.cells {
			if c == tag {
				scratch[j] = CellEmpty
			} else {
				scratch[j] = c
			}
		}
		if b.canFall(ShapeOf(k), b.anchors[i], scratch) {
			b.anchors[i].Y = min(b.height, b.anchors[i].Y+1)
		}
	}
}

func (b *Board) canFall(s Shape, anchor core.Point, scratch []Cell) bool {
	for py, row := range s {
		for px, v := range row {
			if v == 0 {
				continue
			}
			p := core.ClampPoint(anchor.Add(px, py), b.width, b.height)
			below := p.Y + 1
			if below >= b.height {
				return false
			}
			if scratch[b.index(p.X, below)] != CellEmpty {
				return false
			}
		}
	}
	return true
}

// stamp clears the grid and writes each piece's tag over its occupied cells
// in spawn order. Later pieces overwrite earlier ones.
func (b *Board) stamp() {
	clear(b.cells)
	for i, k := range b.pieces {
		tag := TagFor(i)
		s := ShapeOf(k)
		for py, row := range s {
			for px, v := range row {
				if v == 0 {
					continue
				}
				p := core.ClampPoint(b.anchors[i].Add(px, py), b.width, b.height)
				b.cells[b.index(p.X, p.Y)] = tag
			}
		}
	}
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}
