package render

import (
	"github.com/lixenwraith/qedit/terminal"
	"github.com/lixenwraith/qedit/terminal/tui"
)

// Screen is the back cell grid composed each frame and handed to the
// terminal's diff flush
type Screen struct {
	cells []terminal.Cell
	w, h  int
}

// NewScreen allocates a screen of the given dimensions
func NewScreen(w, h int) *Screen {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Screen{
		cells: make([]terminal.Cell, w*h),
		w:     w,
		h:     h,
	}
}

// Size returns screen dimensions
func (s *Screen) Size() (w, h int) {
	return s.w, s.h
}

// Cells returns the row-major backing slice for flushing
func (s *Screen) Cells() []terminal.Cell {
	return s.cells
}

// Resize reallocates the grid, preserving the overlapping area and padding
// new cells with the default cell
func (s *Screen) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == s.w && h == s.h {
		return
	}

	cells := make([]terminal.Cell, w*h)
	copyW := min(w, s.w)
	copyH := min(h, s.h)
	for y := 0; y < copyH; y++ {
		copy(cells[y*w:y*w+copyW], s.cells[y*s.w:y*s.w+copyW])
	}

	s.cells = cells
	s.w = w
	s.h = h
}

// Region returns a drawing region covering the whole screen
func (s *Screen) Region() tui.Region {
	return tui.NewRegion(s.cells, s.w, 0, 0, s.w, s.h)
}

// Fill overwrites every cell with the rune in the given colors
func (s *Screen) Fill(ch rune, fg, bg terminal.RGB) {
	for i := range s.cells {
		s.cells[i] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg}
	}
}
