package editor

import (
	"strconv"

	"github.com/lixenwraith/qedit/buffer"
	"github.com/lixenwraith/qedit/render"
	"github.com/lixenwraith/qedit/terminal"
	"github.com/lixenwraith/qedit/terminal/tui"
)

// gutterReserve is the fixed column budget held back from text for the line
// number gutter and its padding
const gutterReserve = 5

// Viewport is one editing window over a buffer. Origin and size are assigned
// by the manager only, scroll state belongs to the viewport.
type Viewport struct {
	OriginX, OriginY int
	W, H             int
	Title            string

	Buf *buffer.Buffer

	startLine int
	startCol  int
}

// NewViewport creates a viewport over buf with zero bounds, the manager
// assigns real bounds before rendering
func NewViewport(buf *buffer.Buffer) *Viewport {
	return &Viewport{
		Buf:   buf,
		Title: displayName(buf),
	}
}

// displayName returns the buffer's file name, "Untitled" when unbacked
func displayName(buf *buffer.Buffer) string {
	if name := buf.FileName(); name != "" {
		return name
	}
	return "Untitled"
}

// DisplayName returns the viewport's current display name
func (v *Viewport) DisplayName() string {
	return displayName(v.Buf)
}

// reconcileScroll adjusts scroll offsets so the buffer cursor is in view.
// Ensures startLine <= cursorLine < startLine+H afterwards, including the
// cursor above a nonzero startLine.
func (v *Viewport) reconcileScroll() {
	if v.H <= 0 || v.W <= gutterReserve {
		return
	}
	cur := v.Buf.Cursor()

	if cur.Line >= v.startLine+v.H {
		v.startLine += cur.Line - (v.startLine + v.H - 1)
	} else if cur.Line < v.startLine {
		v.startLine = cur.Line
	}

	budget := v.W - gutterReserve
	if cur.Offset >= v.startCol+budget {
		v.startCol += cur.Offset - (v.startCol + budget - 1)
	} else if cur.Offset < v.startCol {
		v.startCol = cur.Offset
	}
}

// StartLine returns the first visible line index
func (v *Viewport) StartLine() int {
	return v.startLine
}

// StartCol returns the first visible column index
func (v *Viewport) StartCol() int {
	return v.startCol
}

// VerticalScrollPercent reports how far down the buffer the visible window
// reaches, in [0,1], exactly 1 when the last line is visible
func (v *Viewport) VerticalScrollPercent() float64 {
	lines := v.Buf.LineCount()
	if lines <= 0 {
		return 1
	}
	p := float64(v.startLine+v.H) / float64(lines)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p
}

// gutterWidth returns the digit count of the highest visible line number
func (v *Viewport) gutterWidth(visibleLines int) int {
	highest := v.startLine + visibleLines
	if highest < 1 {
		highest = 1
	}
	return len(strconv.Itoa(highest))
}

// Render draws the visible window of the buffer into the screen region.
// When focused it first reconciles scroll with the cursor, and returns the
// screen cell where the hardware cursor belongs.
func (v *Viewport) Render(screen tui.Region, focused bool) (cursorX, cursorY int, showCursor bool) {
	if v.W <= gutterReserve || v.H <= 0 {
		return 0, 0, false
	}

	if focused {
		v.reconcileScroll()
	}

	area := screen.Sub(v.OriginX, v.OriginY, v.W, v.H)

	lines := v.Buf.Lines()
	from := v.startLine
	if from > len(lines) {
		from = len(lines)
	}
	to := from + v.H
	if to > len(lines) {
		to = len(lines)
	}
	visible := lines[from:to]

	digits := v.gutterWidth(len(visible))
	textBudget := v.W - digits - 2 // gutter, its padding space, right margin

	fg := render.White
	if focused {
		fg = render.LightWhite
	}

	for i, line := range visible {
		runes := []rune(line)

		// Lines scrolled entirely out of view to the left are skipped
		if v.startCol > 0 && v.startCol >= len(runes) {
			continue
		}

		num := tui.PadLeft(strconv.Itoa(from+i+1), digits)
		area.Text(0, i, num, fg, render.Blue, terminal.AttrNone)

		text := runes[v.startCol:]
		if len(text) > textBudget {
			text = text[:textBudget]
		}
		area.Text(digits+1, i, string(text), fg, render.Blue, terminal.AttrNone)
	}

	if !focused {
		return 0, 0, false
	}

	cur := v.Buf.Cursor()
	cursorX = v.OriginX + digits + 1 + (cur.Offset - v.startCol)
	cursorY = v.OriginY + (cur.Line - v.startLine)
	return cursorX, cursorY, true
}

// Insert places the rune at the cursor and advances it, newline insertion
// moves to the next line first
func (v *Viewport) Insert(r rune) {
	v.Buf.Insert(string(r))
	if r == '\n' {
		v.Buf.MoveDown()
	}
	v.Buf.MoveRight()
}

// Backspace deletes the rune before the cursor, merging with the previous
// line at column zero
func (v *Viewport) Backspace() {
	cur := v.Buf.Cursor()
	if cur.Offset > 0 {
		v.Buf.MoveTo(cur.Line, cur.Offset-1)
	} else if cur.Line > 0 {
		v.Buf.MoveUp()
		v.Buf.MoveToEndOfLine()
	} else {
		return
	}
	v.Buf.Delete()
}

// Delete removes the rune at the cursor
func (v *Viewport) Delete() {
	v.Buf.Delete()
}
