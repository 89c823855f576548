package tui

import (
	"github.com/lixenwraith/qedit/terminal"
)

// ModalOpts configures modal overlay rendering
type ModalOpts struct {
	Title   string
	TitleFg terminal.RGB
	TitleBg terminal.RGB
	Bg      terminal.RGB
}

// Modal fills region with background, draws a header row with centered bold
// title, and returns the content region below the header
func (r Region) Modal(opts ModalOpts) Region {
	if r.W < 3 || r.H < 2 {
		return r.Sub(1, 1, 0, 0)
	}

	header := r.Sub(0, 0, r.W, 1)
	header.Fill(opts.TitleBg)
	header.TextCenter(0, Truncate(opts.Title, r.W), opts.TitleFg, opts.TitleBg, terminal.AttrBold)

	body := r.Sub(0, 1, r.W, r.H-1)
	body.Fill(opts.Bg)

	return body
}
