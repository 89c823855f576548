package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/qedit/terminal"
)

// Palette source colors, xterm values for the sixteen ANSI entries
var (
	RgbBlack   = tcell.NewRGBColor(0, 0, 0)
	RgbRed     = tcell.NewRGBColor(205, 0, 0)
	RgbGreen   = tcell.NewRGBColor(0, 205, 0)
	RgbYellow  = tcell.NewRGBColor(205, 205, 0)
	RgbBlue    = tcell.NewRGBColor(0, 0, 238)
	RgbMagenta = tcell.NewRGBColor(205, 0, 205)
	RgbCyan    = tcell.NewRGBColor(0, 205, 205)
	RgbWhite   = tcell.NewRGBColor(229, 229, 229)

	RgbLightBlack   = tcell.NewRGBColor(127, 127, 127)
	RgbLightRed     = tcell.NewRGBColor(255, 0, 0)
	RgbLightGreen   = tcell.NewRGBColor(0, 255, 0)
	RgbLightYellow  = tcell.NewRGBColor(255, 255, 0)
	RgbLightBlue    = tcell.NewRGBColor(92, 92, 255)
	RgbLightMagenta = tcell.NewRGBColor(255, 0, 255)
	RgbLightCyan    = tcell.NewRGBColor(0, 255, 255)
	RgbLightWhite   = tcell.NewRGBColor(255, 255, 255)
)

// Cell-level palette, derived from the tcell colors at init
var (
	Black   = TcellToRGB(RgbBlack)
	Red     = TcellToRGB(RgbRed)
	Green   = TcellToRGB(RgbGreen)
	Yellow  = TcellToRGB(RgbYellow)
	Blue    = TcellToRGB(RgbBlue)
	Magenta = TcellToRGB(RgbMagenta)
	Cyan    = TcellToRGB(RgbCyan)
	White   = TcellToRGB(RgbWhite)

	LightBlack   = TcellToRGB(RgbLightBlack)
	LightRed     = TcellToRGB(RgbLightRed)
	LightGreen   = TcellToRGB(RgbLightGreen)
	LightYellow  = TcellToRGB(RgbLightYellow)
	LightBlue    = TcellToRGB(RgbLightBlue)
	LightMagenta = TcellToRGB(RgbLightMagenta)
	LightCyan    = TcellToRGB(RgbLightCyan)
	LightWhite   = TcellToRGB(RgbLightWhite)
)

// Ansi256 returns a value for the extended 256-color path. The cell must
// carry terminal.AttrFg256 or terminal.AttrBg256 so the index in R is
// emitted as a palette reference rather than a truecolor channel.
func Ansi256(index uint8) terminal.RGB {
	return terminal.RGB{R: index}
}
