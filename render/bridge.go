package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/qedit/terminal"
)

// TcellToRGB converts tcell.Color to terminal.RGB
// Treats ColorDefault as black
func TcellToRGB(c tcell.Color) terminal.RGB {
	if c == tcell.ColorDefault {
		return terminal.RGBBlack
	}
	r, g, b := c.RGB()
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// RGBToTcell converts terminal.RGB to tcell.Color
func RGBToTcell(rgb terminal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
