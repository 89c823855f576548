package tui

import (
	"testing"

	"github.com/lixenwraith/qedit/terminal"
)

func newTestRegion(w, h int) Region {
	return NewRegion(make([]terminal.Cell, w*h), w, 0, 0, w, h)
}

func TestCellOutOfBoundsIsNoop(t *testing.T) {
	r := newTestRegion(4, 3)
	r.Cell(-1, 0, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	r.Cell(4, 0, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	r.Cell(0, 3, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	for i, c := range r.Cells {
		if c.Rune != 0 {
			t.Errorf("Cell %d modified by out-of-bounds write", i)
		}
	}
}

func TestGetOutOfBoundsReturnsDefault(t *testing.T) {
	r := newTestRegion(4, 3)
	r.Cell(1, 1, 'x', terminal.RGB{R: 255}, terminal.RGB{}, terminal.AttrNone)
	if got := r.Get(1, 1); got.Rune != 'x' {
		t.Errorf("Expected 'x', got %q", got.Rune)
	}
	if got := r.Get(10, 10); got != (terminal.Cell{}) {
		t.Errorf("Expected default cell, got %+v", got)
	}
}

func TestSubClipsToParent(t *testing.T) {
	r := newTestRegion(10, 10)
	sub := r.Sub(6, 6, 10, 10)
	if sub.W != 4 || sub.H != 4 {
		t.Errorf("Expected clipped 4x4, got %dx%d", sub.W, sub.H)
	}
	sub = r.Sub(-2, -2, 5, 5)
	if sub.X != 0 || sub.Y != 0 || sub.W != 3 || sub.H != 3 {
		t.Errorf("Expected origin clip to 3x3 at (0,0), got %dx%d at (%d,%d)", sub.W, sub.H, sub.X, sub.Y)
	}
}

func TestSubWritesThroughToParentBuffer(t *testing.T) {
	r := newTestRegion(10, 5)
	sub := r.Sub(3, 2, 4, 2)
	sub.Cell(0, 0, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if got := r.Get(3, 2); got.Rune != 'x' {
		t.Errorf("Expected sub-region write at parent (3,2), got %q", got.Rune)
	}
}

func TestInset(t *testing.T) {
	r := newTestRegion(10, 8)
	in := r.Inset(1)
	if in.X != 1 || in.Y != 1 || in.W != 8 || in.H != 6 {
		t.Errorf("Expected 8x6 at (1,1), got %dx%d at (%d,%d)", in.W, in.H, in.X, in.Y)
	}
}

func TestFillRune(t *testing.T) {
	r := newTestRegion(3, 2)
	r.FillRune('▒', terminal.RGB{R: 100}, terminal.RGBBlack)
	for i, c := range r.Cells {
		if c.Rune != '▒' {
			t.Errorf("Cell %d: expected fill rune, got %q", i, c.Rune)
		}
	}
}

func TestTextTruncatesAtEdge(t *testing.T) {
	r := newTestRegion(4, 1)
	r.Text(2, 0, "abcd", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if r.Get(2, 0).Rune != 'a' || r.Get(3, 0).Rune != 'b' {
		t.Errorf("Expected 'ab' at columns 2-3")
	}
	if r.Get(0, 0).Rune != 0 || r.Get(1, 0).Rune != 0 {
		t.Errorf("Expected untouched cells before text start")
	}
}

func TestTextCenter(t *testing.T) {
	r := newTestRegion(10, 1)
	r.TextCenter(0, "abcd", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if r.Get(3, 0).Rune != 'a' || r.Get(6, 0).Rune != 'd' {
		t.Errorf("Expected centered text at columns 3-6")
	}
}

func TestBoxBgCorners(t *testing.T) {
	r := newTestRegion(5, 4)
	r.BoxBg(LineSingle, terminal.RGB{}, terminal.RGBBlack)
	if r.Get(0, 0).Rune != '┌' || r.Get(4, 0).Rune != '┐' ||
		r.Get(0, 3).Rune != '└' || r.Get(4, 3).Rune != '┘' {
		t.Errorf("Expected box corners at region edges")
	}
	if r.Get(2, 0).Rune != '─' || r.Get(0, 2).Rune != '│' {
		t.Errorf("Expected box edges")
	}
}

func TestTextRight(t *testing.T) {
	r := newTestRegion(10, 1)
	r.TextRight(0, "abc", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if r.Get(7, 0).Rune != 'a' || r.Get(9, 0).Rune != 'c' {
		t.Errorf("Expected right-aligned text at columns 7-9")
	}
}

func TestBoxRoundedCorners(t *testing.T) {
	r := newTestRegion(4, 3)
	r.Box(LineRounded, terminal.RGB{R: 255})
	if r.Get(0, 0).Rune != '╭' || r.Get(3, 2).Rune != '╯' {
		t.Errorf("Expected rounded corners, got %q and %q", r.Get(0, 0).Rune, r.Get(3, 2).Rune)
	}
	if r.Get(1, 1).Rune != 0 {
		t.Errorf("Expected interior untouched")
	}
}

func TestScrollBarThumbBounds(t *testing.T) {
	r := newTestRegion(1, 10)
	ScrollBar(r, 0, 10, 3, 1.0, terminal.RGB{}, terminal.RGBBlack)
	for y := 7; y < 10; y++ {
		if r.Get(0, y).Rune != '█' {
			t.Errorf("Expected thumb at row %d", y)
		}
	}
	if r.Get(0, 6).Rune != '│' {
		t.Errorf("Expected track above thumb")
	}
}
