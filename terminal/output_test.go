package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func testCells(w, h int) []Cell {
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Bg: RGBBlack}
	}
	return cells
}

func TestFlushSecondPassEmitsNothing(t *testing.T) {
	var out bytes.Buffer
	o := newOutputBuffer(&out, ColorMode256)

	cells := testCells(10, 4)
	cells[0] = Cell{Rune: 'A', Fg: RGB{255, 255, 255}, Bg: RGBBlack}

	o.flush(cells, 10, 4)
	if out.Len() == 0 {
		t.Fatal("Expected first flush to emit output")
	}

	out.Reset()
	o.flush(cells, 10, 4)
	if out.Len() != 0 {
		t.Errorf("Expected unchanged frame to emit nothing, got %q", out.String())
	}
}

func TestFlushTouchesOnlyChangedCell(t *testing.T) {
	var out bytes.Buffer
	o := newOutputBuffer(&out, ColorMode256)

	cells := testCells(10, 4)
	o.flush(cells, 10, 4)
	out.Reset()

	// Single cell change at (3, 1): white on black 'X'
	cells[1*10+3] = Cell{Rune: 'X', Fg: RGB{255, 255, 255}, Bg: RGBBlack}
	o.flush(cells, 10, 4)

	// One absolute move, one combined SGR, the rune, trailing reset
	want := "\x1b[2;4H\x1b[0;38;5;231;48;5;16mX\x1b[0m"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestFlushUsesCursorForwardOnSameRow(t *testing.T) {
	var out bytes.Buffer
	o := newOutputBuffer(&out, ColorMode256)

	cells := testCells(10, 2)
	o.flush(cells, 10, 2)
	out.Reset()

	fg := RGB{255, 255, 255}
	cells[1] = Cell{Rune: 'a', Fg: fg, Bg: RGBBlack}
	cells[4] = Cell{Rune: 'b', Fg: fg, Bg: RGBBlack}
	o.flush(cells, 10, 2)

	s := out.String()
	// Gap of 2 between cursor after 'a' (x=2) and 'b' (x=4)
	if !strings.Contains(s, "\x1b[2C") {
		t.Errorf("Expected relative forward move in %q", s)
	}
	if strings.Count(s, "H") != 1 {
		t.Errorf("Expected a single absolute cursor move, got %q", s)
	}
}

func TestFlushSkipsRedundantStyles(t *testing.T) {
	var out bytes.Buffer
	o := newOutputBuffer(&out, ColorMode256)

	cells := testCells(8, 1)
	o.flush(cells, 8, 1)
	out.Reset()

	fg := RGB{255, 255, 255}
	for x := 0; x < 4; x++ {
		cells[x] = Cell{Rune: rune('a' + x), Fg: fg, Bg: RGBBlack}
	}
	o.flush(cells, 8, 1)

	s := out.String()
	// One style for the run, not one per cell
	if got := strings.Count(s, "38;5;231"); got != 1 {
		t.Errorf("Expected 1 fg emission for contiguous run, got %d in %q", got, s)
	}
	if !strings.Contains(s, "abcd") {
		t.Errorf("Expected contiguous rune output in %q", s)
	}
}

func TestForceFullRedraw(t *testing.T) {
	var out bytes.Buffer
	o := newOutputBuffer(&out, ColorMode256)

	cells := testCells(5, 2)
	cells[0] = Cell{Rune: 'Z', Fg: RGB{255, 255, 255}, Bg: RGBBlack}
	o.flush(cells, 5, 2)

	o.forceFullRedraw()
	out.Reset()
	o.flush(cells, 5, 2)

	if !strings.Contains(out.String(), "Z") {
		t.Error("Expected full redraw to re-emit unchanged cells")
	}
}

func TestFlushResizeResetsFront(t *testing.T) {
	var out bytes.Buffer
	o := newOutputBuffer(&out, ColorMode256)

	cells := testCells(6, 2)
	o.flush(cells, 6, 2)
	out.Reset()

	// Different dimensions force a resize and full redraw of the new frame
	small := testCells(4, 2)
	o.flush(small, 4, 2)
	if out.Len() == 0 {
		t.Error("Expected resized frame to be fully redrawn")
	}
	if o.width != 4 || o.height != 2 {
		t.Errorf("Expected front buffer 4x2, got %dx%d", o.width, o.height)
	}
}

func TestFlushRejectsShortSlice(t *testing.T) {
	var out bytes.Buffer
	o := newOutputBuffer(&out, ColorMode256)

	o.flush(make([]Cell, 3), 10, 4)
	if out.Len() != 0 {
		t.Error("Expected undersized cell slice to be dropped")
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		c    RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},
		{RGB{255, 255, 255}, 231},
		{RGB{255, 0, 0}, 196},
		{RGB{0, 255, 0}, 46},
		{RGB{0, 0, 255}, 21},
		{RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		if got := RGBTo256(tt.c); got != tt.want {
			t.Errorf("RGBTo256(%v): expected %d, got %d", tt.c, tt.want, got)
		}
	}
}
