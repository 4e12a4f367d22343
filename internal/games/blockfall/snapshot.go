package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// PieceSnapshot describes one piece at the moment of the snapshot.
type PieceSnapshot struct {
	Index  int
	Kind   Kind
	Anchor core.Point
	Tag    Cell
}

// Snapshot is a copy of the board state used by determinism tests and the
// TUI status line. Compare snapshots with reflect.DeepEqual.
type Snapshot struct {
	Width    int
	Height   int
	Pieces   []PieceSnapshot
	Active   int // -1 when no piece has spawned
	Occupied int // non-empty cells in the last stamped grid
}

// Snapshot captures the current board state.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Width:  b.width,
		Height: b.height,
		Pieces: make([]PieceSnapshot, len(b.pieces)),
		Active: -1,
	}
	for i, k := range b.pieces {
		snap.Pieces[i] = PieceSnapshot{
			Index:  i,
			Kind:   k,
			Anchor: b.anchors[i],
			Tag:    TagFor(i),
		}
	}
	if i, ok := b.Active(); ok {
		snap.Active = i
	}
	for _, c := range b.cells {
		if c != CellEmpty {
			snap.Occupied++
		}
	}
	return snap
}
