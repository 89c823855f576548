package tui

import "testing"

func TestWrapText(t *testing.T) {
	lines := WrapText("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestWrapTextLongWord(t *testing.T) {
	lines := WrapText("abcdefghij", 4)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %v", len(lines), lines)
	}
	for i, line := range lines {
		if RuneLen(line) > 4 {
			t.Errorf("Line %d exceeds width: %q", i, line)
		}
	}
}

func TestWrapTextEmpty(t *testing.T) {
	lines := WrapText("", 10)
	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("Expected single empty line, got %v", lines)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Expected unmodified string, got %q", got)
	}
	if got := Truncate("hello world", 5); got != "hell…" {
		t.Errorf("Expected truncated with ellipsis, got %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestPadLeft(t *testing.T) {
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("Expected %q, got %q", "  ab", got)
	}
	if got := PadLeft("abcd", 2); got != "abcd" {
		t.Errorf("Expected unmodified string, got %q", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := DisplayWidth("abc"); got != 3 {
		t.Errorf("Expected width 3, got %d", got)
	}
	// CJK runes occupy two columns
	if got := DisplayWidth("日本"); got != 4 {
		t.Errorf("Expected width 4, got %d", got)
	}
}
