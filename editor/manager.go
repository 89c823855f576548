package editor

import (
	"fmt"

	"github.com/lixenwraith/qedit/buffer"
	"github.com/lixenwraith/qedit/render"
	"github.com/lixenwraith/qedit/terminal"
	"github.com/lixenwraith/qedit/terminal/tui"
)

// Manager tiles viewports within its area, renders the focused one with its
// chrome (border, tab titles, scrollbar), and routes edit-mode keys to it.
// Single-tile tiling: every viewport gets the full inset area.
type Manager struct {
	OriginX, OriginY int
	W, H             int

	Viewports []*Viewport
	Focus     int
}

// NewManager creates an empty manager with the given area
func NewManager(x, y, w, h int) *Manager {
	return &Manager{OriginX: x, OriginY: y, W: w, H: h}
}

// Resize updates the manager's area, viewport bounds follow on next render
func (m *Manager) Resize(x, y, w, h int) {
	m.OriginX, m.OriginY = x, y
	m.W, m.H = w, h
}

// Empty reports whether no viewports are open
func (m *Manager) Empty() bool {
	return len(m.Viewports) == 0
}

// Focused returns the focused viewport, nil when empty
func (m *Manager) Focused() *Viewport {
	if m.Empty() {
		return nil
	}
	return m.Viewports[m.Focus]
}

// retile assigns bounds to every viewport: inset one cell from the manager
// area for the border
func (m *Manager) retile() {
	for _, v := range m.Viewports {
		v.OriginX = m.OriginX + 1
		v.OriginY = m.OriginY + 1
		v.W = m.W - 2
		v.H = m.H - 2
	}
}

// Render draws border, tabs, scrollbar, and the focused viewport. Returns
// the hardware cursor cell when the viewport has focus.
func (m *Manager) Render(screen tui.Region, hasFocus bool) (cursorX, cursorY int, showCursor bool) {
	if m.Empty() || m.W < 4 || m.H < 3 {
		return 0, 0, false
	}

	m.retile()
	focused := m.Viewports[m.Focus]

	frame := screen.Sub(m.OriginX, m.OriginY, m.W, m.H)
	frame.Fill(render.Blue)
	frame.BoxBg(tui.LineSingle, render.White, render.Blue)

	m.renderTabs(frame)
	m.renderScrollBar(frame, focused)

	return focused.Render(screen, hasFocus)
}

// renderTabs draws all viewport titles centered on the top border, the
// focused tab inverted, others between tick marks
func (m *Manager) renderTabs(frame tui.Region) {
	titles := make([]string, len(m.Viewports))
	total := 0
	for i, v := range m.Viewports {
		t := tui.Truncate(v.Title, m.W-4)
		if v.Buf.Modified() {
			t = "*" + t
		}
		titles[i] = t
		total += tui.DisplayWidth(t) + 3
	}

	x := m.W/2 - total/2
	for i, t := range titles {
		if i == m.Focus {
			frame.Text(x, 0, " "+t+" ", render.Blue, render.White, terminal.AttrNone)
		} else {
			frame.Text(x, 0, "┤"+t+"├", render.White, render.Blue, terminal.AttrNone)
		}
		x += tui.DisplayWidth(t) + 3
	}
}

// renderScrollBar draws the right-edge scrollbar for the focused viewport
func (m *Manager) renderScrollBar(frame tui.Region, v *Viewport) {
	lines := v.Buf.LineCount()
	if lines < 1 {
		lines = 1
	}

	trackH := v.H
	thumbH := trackH * trackH / lines
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH-1 && trackH > 1 {
		thumbH = trackH - 1
	}

	track := frame.Sub(m.W-1, 1, 1, trackH)
	tui.ScrollBar(track, 0, trackH, thumbH, v.VerticalScrollPercent(), render.White, render.Blue)
}

// keyDescription names an event for the unhandled-input alert
func keyDescription(ev terminal.Event) string {
	if ev.Key == terminal.KeyRune {
		return fmt.Sprintf("rune %q (modifiers %d)", ev.Rune, ev.Modifiers)
	}
	return fmt.Sprintf("key code %d (modifiers %d)", ev.Key, ev.Modifiers)
}

// HandleKey routes an edit-mode key to the focused viewport. It returns a
// description of the event when it was not recognized, empty otherwise.
func (m *Manager) HandleKey(ev terminal.Event) (unhandled string) {
	if m.Empty() {
		return ""
	}
	v := m.Viewports[m.Focus]

	switch ev.Key {
	case terminal.KeyCtrlQ:
		m.CloseFocused()
	case terminal.KeyRune:
		v.Insert(ev.Rune)
	case terminal.KeyEnter:
		v.Insert('\n')
	case terminal.KeyTab:
		v.Insert('\t')
	case terminal.KeyBackspace:
		v.Backspace()
	case terminal.KeyDelete:
		v.Delete()
	case terminal.KeyUp:
		v.Buf.MoveUp()
	case terminal.KeyDown:
		v.Buf.MoveDown()
	case terminal.KeyLeft:
		v.Buf.MoveLeft()
	case terminal.KeyRight:
		v.Buf.MoveRight()
	default:
		return keyDescription(ev)
	}
	return ""
}

// NewViewport opens a viewport over buf and returns its index
func (m *Manager) NewViewport(buf *buffer.Buffer) int {
	m.Viewports = append(m.Viewports, NewViewport(buf))
	m.retile()
	return len(m.Viewports) - 1
}

// CloseFocused removes the focused viewport, focus shifts to the previous
// entry when possible
func (m *Manager) CloseFocused() {
	if m.Empty() {
		return
	}
	m.Viewports = append(m.Viewports[:m.Focus], m.Viewports[m.Focus+1:]...)
	if m.Focus > 0 {
		m.Focus--
	}
}

// NextTab moves focus forward with wraparound
func (m *Manager) NextTab() {
	if m.Empty() {
		return
	}
	m.Focus = (m.Focus + 1) % len(m.Viewports)
}
