package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type Colors struct {
	MarkX    tcell.Color
	MarkO    tcell.Color
	Empty    tcell.Color
	Enabled  tcell.Color
	Disabled tcell.Color
}

var DefaultColors = Colors{
	MarkX:    tcell.ColorOrange,
	MarkO:    tcell.ColorDodgerBlue,
	Empty:    tcell.ColorDimGray,
	Enabled:  tcell.ColorWhite,
	Disabled: tcell.ColorDimGray,
}

func (c Colors) markColor(mark entity.Mark) tcell.Color {
	switch mark {
	case entity.MarkX:
		return c.MarkX
	case entity.MarkO:
		return c.MarkO
	default:
		return c.Empty
	}
}

func (c Colors) controlColor(enabled bool) tcell.Color {
	if enabled {
		return c.Enabled
	}
	return c.Disabled
}
