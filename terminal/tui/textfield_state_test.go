package tui

import (
	"testing"

	"github.com/lixenwraith/qedit/terminal"
)

func TestTextFieldInsertDelete(t *testing.T) {
	f := NewTextFieldState("ab")
	if f.Cursor != 2 {
		t.Errorf("Expected cursor at end, got %d", f.Cursor)
	}
	f.Insert('c')
	if f.Value() != "abc" {
		t.Errorf("Expected 'abc', got %q", f.Value())
	}
	f.DeleteBackward()
	f.DeleteBackward()
	if f.Value() != "a" || f.Cursor != 1 {
		t.Errorf("Expected 'a' with cursor 1, got %q cursor %d", f.Value(), f.Cursor)
	}
	if f.DeleteForward() {
		t.Errorf("Expected DeleteForward at end to report no change")
	}
}

func TestTextFieldWordOps(t *testing.T) {
	f := NewTextFieldState("foo bar.baz")
	f.DeleteWordBackward()
	if f.Value() != "foo bar." {
		t.Errorf("Expected 'foo bar.', got %q", f.Value())
	}
	f.MoveWordLeft()
	if f.Cursor != 4 {
		t.Errorf("Expected cursor at word start 4, got %d", f.Cursor)
	}
	f.MoveToStart()
	f.MoveWordRight()
	if f.Cursor != 4 {
		t.Errorf("Expected cursor past 'foo ' at 4, got %d", f.Cursor)
	}
}

func TestTextFieldKillLine(t *testing.T) {
	f := NewTextFieldState("hello world")
	f.Cursor = 5
	f.DeleteToEnd()
	if f.Value() != "hello" {
		t.Errorf("Expected 'hello', got %q", f.Value())
	}
	f.Cursor = 3
	f.DeleteToStart()
	if f.Value() != "lo" || f.Cursor != 0 {
		t.Errorf("Expected 'lo' with cursor 0, got %q cursor %d", f.Value(), f.Cursor)
	}
}

func TestTextFieldHandleKey(t *testing.T) {
	f := NewTextFieldState("")
	for _, r := range "path" {
		if !f.HandleKey(terminal.KeyRune, r, 0) {
			t.Fatalf("Expected rune %q to be accepted", r)
		}
	}
	f.HandleKey(terminal.KeyLeft, 0, 0)
	f.HandleKey(terminal.KeyBackspace, 0, 0)
	if f.Value() != "path"[:2]+"h" {
		t.Errorf("Expected 'pah', got %q", f.Value())
	}
	f.HandleKey(terminal.KeyCtrlU, 0, 0)
	if f.Value() != "h" {
		t.Errorf("Expected 'h' after kill to start, got %q", f.Value())
	}
	if f.HandleKey(terminal.KeyRune, 0x07, 0) {
		t.Errorf("Expected control rune to be rejected")
	}
}

func TestTextFieldAdjustScroll(t *testing.T) {
	f := NewTextFieldState("abcdefghij")
	f.AdjustScroll(4)
	if f.Scroll != 7 {
		t.Errorf("Expected scroll 7 to keep cursor visible, got %d", f.Scroll)
	}
	f.MoveToStart()
	f.AdjustScroll(4)
	if f.Scroll != 0 {
		t.Errorf("Expected scroll reset to 0, got %d", f.Scroll)
	}
}
