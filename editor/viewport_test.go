package editor

import (
	"strings"
	"testing"

	"github.com/lixenwraith/qedit/buffer"
	"github.com/lixenwraith/qedit/terminal"
	"github.com/lixenwraith/qedit/terminal/tui"
)

func bufferWithLines(n int) *buffer.Buffer {
	b := buffer.New()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("line")
	}
	b.Insert(sb.String())
	return b
}

func testViewport(b *buffer.Buffer, w, h int) (*Viewport, tui.Region) {
	v := NewViewport(b)
	v.OriginX, v.OriginY = 0, 0
	v.W, v.H = w, h
	screen := tui.NewRegion(make([]terminal.Cell, w*h), w, 0, 0, w, h)
	return v, screen
}

func TestScrollFollowsCursorDown(t *testing.T) {
	b := bufferWithLines(50)
	v, screen := testViewport(b, 40, 10)

	b.MoveTo(25, 0)
	v.Render(screen, true)
	if v.StartLine() != 16 {
		t.Errorf("Expected startLine 16, got %d", v.StartLine())
	}
	cur := b.Cursor()
	if cur.Line < v.StartLine() || cur.Line >= v.StartLine()+v.H {
		t.Errorf("Cursor line %d outside window [%d,%d)", cur.Line, v.StartLine(), v.StartLine()+v.H)
	}
}

func TestScrollRetreatsToCursorLine(t *testing.T) {
	b := bufferWithLines(50)
	v, screen := testViewport(b, 40, 10)

	b.MoveTo(40, 0)
	v.Render(screen, true)
	b.MoveTo(5, 0)
	v.Render(screen, true)
	if v.StartLine() != 5 {
		t.Errorf("Expected startLine 5, got %d", v.StartLine())
	}
}

func TestScrollCursorLineZeroWithScrolledView(t *testing.T) {
	b := bufferWithLines(50)
	v, screen := testViewport(b, 40, 10)

	b.MoveTo(40, 0)
	v.Render(screen, true)
	if v.StartLine() == 0 {
		t.Fatalf("Expected scrolled view before the boundary check")
	}
	b.MoveTo(0, 0)
	v.Render(screen, true)
	if v.StartLine() != 0 {
		t.Errorf("Expected startLine 0 for cursor at line 0, got %d", v.StartLine())
	}
}

func TestHorizontalScrollBudget(t *testing.T) {
	b := buffer.New()
	b.Insert(strings.Repeat("x", 200))
	v, screen := testViewport(b, 40, 10)

	b.MoveTo(0, 100)
	v.Render(screen, true)
	budget := v.W - gutterReserve
	cur := b.Cursor()
	if cur.Offset < v.StartCol() || cur.Offset >= v.StartCol()+budget {
		t.Errorf("Cursor offset %d outside column window [%d,%d)", cur.Offset, v.StartCol(), v.StartCol()+budget)
	}

	b.MoveTo(0, 3)
	v.Render(screen, true)
	if v.StartCol() != 3 {
		t.Errorf("Expected startCol 3, got %d", v.StartCol())
	}
}

func TestVerticalScrollPercentRange(t *testing.T) {
	b := bufferWithLines(50)
	v, screen := testViewport(b, 40, 10)

	for _, line := range []int{0, 10, 25, 49} {
		b.MoveTo(line, 0)
		v.Render(screen, true)
		p := v.VerticalScrollPercent()
		if p < 0 || p > 1 {
			t.Errorf("Percent %f out of range at line %d", p, line)
		}
	}

	b.MoveTo(49, 0)
	v.Render(screen, true)
	if p := v.VerticalScrollPercent(); p != 1.0 {
		t.Errorf("Expected 1.0 with bottom visible, got %f", p)
	}
}

func TestShortBufferScrollPercentIsOne(t *testing.T) {
	b := bufferWithLines(3)
	v, screen := testViewport(b, 40, 10)
	v.Render(screen, true)
	if p := v.VerticalScrollPercent(); p != 1.0 {
		t.Errorf("Expected 1.0 when whole buffer visible, got %f", p)
	}
}

func TestRenderGutterAndText(t *testing.T) {
	b := buffer.New()
	b.Insert("hello")
	v, screen := testViewport(b, 40, 5)
	v.Render(screen, true)

	if screen.Get(0, 0).Rune != '1' {
		t.Errorf("Expected line number '1' in gutter, got %q", screen.Get(0, 0).Rune)
	}
	if screen.Get(2, 0).Rune != 'h' {
		t.Errorf("Expected text after gutter, got %q", screen.Get(2, 0).Rune)
	}
}

func TestRenderSkipsLinesLeftOfWindow(t *testing.T) {
	b := buffer.New()
	b.Insert("ab\n" + strings.Repeat("x", 100))
	v, screen := testViewport(b, 20, 5)

	b.MoveTo(1, 50)
	v.Render(screen, true)
	if v.StartCol() == 0 {
		t.Fatalf("Expected horizontal scroll")
	}
	// Line 0 is entirely left of the window, its row stays untouched
	if got := screen.Get(2, 0).Rune; got != 0 {
		t.Errorf("Expected skipped short line, got %q", got)
	}
}

func TestCursorScreenPosition(t *testing.T) {
	b := buffer.New()
	b.Insert("abc")
	b.MoveTo(0, 2)
	v, screen := testViewport(b, 40, 5)
	x, y, show := v.Render(screen, true)
	if !show {
		t.Fatalf("Expected visible cursor on focused viewport")
	}
	// Gutter digit + padding space, then offset 2
	if x != 4 || y != 0 {
		t.Errorf("Expected cursor at (4,0), got (%d,%d)", x, y)
	}
}

func TestUnfocusedRenderHidesCursorAndKeepsScroll(t *testing.T) {
	b := bufferWithLines(50)
	v, screen := testViewport(b, 40, 10)
	b.MoveTo(40, 0)
	_, _, show := v.Render(screen, false)
	if show {
		t.Errorf("Expected no cursor for unfocused viewport")
	}
	if v.StartLine() != 0 {
		t.Errorf("Expected unfocused render to leave scroll alone, got %d", v.StartLine())
	}
}

func TestViewportInsertNewline(t *testing.T) {
	b := buffer.New()
	v := NewViewport(b)
	for _, r := range "ab" {
		v.Insert(r)
	}
	v.Insert('\n')
	for _, r := range "cd" {
		v.Insert(r)
	}
	if b.Data() != "ab\ncd" {
		t.Errorf("Expected %q, got %q", "ab\ncd", b.Data())
	}
	if cur := b.Cursor(); cur.Line != 1 || cur.Offset != 2 {
		t.Errorf("Expected cursor (1,2), got (%d,%d)", cur.Line, cur.Offset)
	}
}

func TestViewportBackspaceMergesLines(t *testing.T) {
	b := buffer.New()
	v := NewViewport(b)
	for _, r := range "ab\ncd" {
		v.Insert(r)
	}
	b.MoveTo(1, 0)
	v.Backspace()
	if b.Data() != "abcd" {
		t.Errorf("Expected merged %q, got %q", "abcd", b.Data())
	}
	if cur := b.Cursor(); cur.Line != 0 || cur.Offset != 2 {
		t.Errorf("Expected cursor (0,2), got (%d,%d)", cur.Line, cur.Offset)
	}
}

func TestViewportBackspaceAtBufferStart(t *testing.T) {
	b := buffer.New()
	b.Insert("abc")
	v := NewViewport(b)
	v.Backspace()
	if b.Data() != "abc" {
		t.Errorf("Expected untouched buffer, got %q", b.Data())
	}
}

func TestDisplayName(t *testing.T) {
	v := NewViewport(buffer.New())
	if v.DisplayName() != "Untitled" {
		t.Errorf("Expected Untitled, got %q", v.DisplayName())
	}
}
