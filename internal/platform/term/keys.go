package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

var runeActions = map[rune]core.Action{
	'w': core.ActionUp,
	'k': core.ActionUp,
	's': core.ActionDown,
	'j': core.ActionDown,
	'a': core.ActionLeft,
	'h': core.ActionLeft,
	'd': core.ActionRight,
	'l': core.ActionRight,
	'r': core.ActionReset,
	'n': core.ActionNextLevel,
	'p': core.ActionPrevLevel,
	'q': core.ActionQuit,
}

// KeyAction maps a tcell key event to a game action. The bindings match the
// Bubble Tea key map.
func KeyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return runeActions[ev.Rune()]
	}
	return core.ActionNone
}

// palette holds the 256-color index of every screen color.
var palette = map[core.Color]int{
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
}

// StyleFor returns the tcell style of a screen color.
func StyleFor(c core.Color) tcell.Style {
	idx, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}
