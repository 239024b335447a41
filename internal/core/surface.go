package core

// Font selects one of the two text sizes the renderer uses.
type Font int

const (
	FontSmall Font = iota // HUD tags and power-up letters
	FontLarge             // titles and the score
)

// Surface is the immediate-mode drawing target the simulation renders into.
// All coordinates are in field pixels; implementations decide how pixels map
// to their output. Failures are the implementation's concern: a surface that
// cannot draw is expected to halt rather than report partial results.
type Surface interface {
	// Clear fills the entire surface with a color.
	Clear(c Color)
	// FillRect fills a rectangle with a color.
	FillRect(r Rect, c Color)
	// DrawLine draws a one pixel wide line between two points, inclusive.
	DrawLine(x0, y0, x1, y1 int, c Color)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(x, y int, text string, f Font, c Color)
}

// Indicator is a single boolean status light.
type Indicator interface {
	SetLit(on bool)
}
