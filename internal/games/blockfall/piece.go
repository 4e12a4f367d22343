// Package blockfall implements the falling-block puzzle engine: piece shapes,
// the random piece factory, the board simulation and its rendered frames.
// It is UI-agnostic and deterministic for a given seed.
package blockfall

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a piece variant name cannot be resolved.
var ErrUnknownKind = errors.New("blockfall: unknown piece kind")

// ShapeSize is the side length of every piece's bounding box.
const ShapeSize = 4

// Shape is a piece's occupancy pattern relative to its anchor (the top-left
// corner of the bounding box), indexed [row][col]. 1 is occupied, 0 is empty.
type Shape [ShapeSize][ShapeSize]uint8

// Kind identifies a piece variant. Variants carry no state of their own:
// the shape is a pure function of the kind.
type Kind uint8

const (
	KindBlock   Kind = iota // 2x2 square
	KindBar                 // 1x4 vertical bar
	KindTromino             // three-cell corner
	KindTee                 // T of four cells
	KindSkew                // S of four cells
	kindCount
)

var shapes = [kindCount]Shape{
	KindBlock: {
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{1, 1, 0, 0},
	},
	KindBar: {
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	},
	KindTromino: {
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{1, 1, 0, 0},
	},
	KindTee: {
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 1, 0, 0},
	},
	KindSkew: {
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{1, 1, 0, 0},
	},
}

var kindNames = [kindCount]string{
	KindBlock:   "block",
	KindBar:     "bar",
	KindTromino: "tromino",
	KindTee:     "tee",
	KindSkew:    "skew",
}

// ShapeOf returns the occupancy pattern for a kind.
// Kinds outside the known set have an empty pattern.
func ShapeOf(k Kind) Shape {
	if k >= kindCount {
		return Shape{}
	}
	return shapes[k]
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the variant's lowercase name.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind resolves a variant name as used in configuration files.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Occupied returns the number of occupied cells in the pattern.
func (s Shape) Occupied() int {
	n := 0
	for _, row := range s {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// String draws the pattern with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
