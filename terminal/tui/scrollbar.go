package tui

import (
	"github.com/lixenwraith/qedit/terminal"
)

// ScrollBar draws a vertical track with a proportional thumb in column x.
// thumbH is clamped to [1, trackH], percent in [0,1] positions the thumb
// along the track.
func ScrollBar(r Region, x, trackH, thumbH int, percent float64, fg, bg terminal.RGB) {
	if x < 0 || x >= r.W || trackH < 1 {
		return
	}
	if trackH > r.H {
		trackH = r.H
	}
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}

	thumbY := int(float64(trackH-thumbH) * percent)
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	for y := 0; y < trackH; y++ {
		if y >= thumbY && y < thumbY+thumbH {
			r.Cell(x, y, '█', fg, bg, terminal.AttrNone)
		} else {
			r.Cell(x, y, '│', fg, bg, terminal.AttrDim)
		}
	}
}
