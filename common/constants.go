package common

// Logical screen size. The window may be any size; ebiten scales the logical
// surface to fit.
const (
	BaseWidth  = 1280
	BaseHeight = 800
)
