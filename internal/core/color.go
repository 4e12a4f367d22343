package core

// Color is a foreground color hint for a screen cell.
// Frontends decide how (or whether) to display it.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBorder
	ColorPiece
	ColorFilled
	ColorActive
	ColorHUD
)
