package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// runeButtons mirrors the Bubble Tea key map.
var runeButtons = map[rune][]core.Button{
	'a': {core.ButtonA},
	'z': {core.ButtonA},
	'b': {core.ButtonB},
	'h': {core.ButtonB},
	'x': {core.ButtonX},
	'c': {core.ButtonX},
	'y': {core.ButtonY},
	'l': {core.ButtonY},
	'd': {core.ButtonA, core.ButtonX},
	' ': {core.ButtonA, core.ButtonX},
}

// buttons returns the pad buttons a key event presses.
func buttons(ev *tcell.EventKey) []core.Button {
	switch ev.Key() {
	case tcell.KeyLeft:
		return []core.Button{core.ButtonB}
	case tcell.KeyRight:
		return []core.Button{core.ButtonY}
	case tcell.KeyRune:
		return runeButtons[ev.Rune()]
	}
	return nil
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// colorMap matches the 256-colour codes used by the Bubble Tea front-end.
var colorMap = map[core.Color]tcell.Color{
	core.ColorBlack:    tcell.ColorDefault,
	core.ColorRed:      tcell.PaletteColor(9),
	core.ColorGreen:    tcell.PaletteColor(10),
	core.ColorDimGreen: tcell.PaletteColor(28),
	core.ColorYellow:   tcell.PaletteColor(11),
	core.ColorBlue:     tcell.PaletteColor(12),
	core.ColorCyan:     tcell.PaletteColor(14),
	core.ColorWhite:    tcell.PaletteColor(15),
	core.ColorOrange:   tcell.PaletteColor(208),
	core.ColorTeal:     tcell.PaletteColor(37),
	core.ColorGray:     tcell.PaletteColor(245),
	core.ColorDimRed:   tcell.PaletteColor(52),
	core.ColorDarkGray: tcell.PaletteColor(238),
}

// cellStyle returns the tcell style of a screen cell.
func cellStyle(c core.Cell) tcell.Style {
	fg, ok := colorMap[c.Color]
	if !ok {
		fg = tcell.ColorDefault
	}
	return tcell.StyleDefault.Foreground(fg).Bold(c.Bold)
}
