package core

// Color represents a fill color on the drawing surface.
// Front-ends map these to terminal colors (ANSI 256-color codes).
type Color uint8

// Palette used by the simulation renderer.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorDimGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorOrange // homing missiles
	ColorTeal   // laser beam
	ColorGray
	ColorDimRed   // empty life slot
	ColorDarkGray // empty bomb slot
)

// String returns the color name, used in test failure messages.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorDimGreen:
		return "dim-green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorTeal:
		return "teal"
	case ColorGray:
		return "gray"
	case ColorDimRed:
		return "dim-red"
	case ColorDarkGray:
		return "dark-gray"
	default:
		return "unknown"
	}
}
