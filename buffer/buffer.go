package buffer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Position identifies a cursor location as line index and rune offset
// within the line
type Position struct {
	Line   int
	Offset int
}

// snapshot captures full buffer content and cursor for history
type snapshot struct {
	lines  [][]rune
	cursor Position
}

// Buffer holds line-oriented text with a cursor and whole-buffer history.
// Lines never contain newline runes; the newline between lines is implied.
// Empty text is represented as a single empty line, text with a trailing
// newline carries a final empty line.
type Buffer struct {
	lines    [][]rune
	cursor   Position
	path     string
	modified bool
	undo     []snapshot
	redo     []snapshot
}

// New creates an empty buffer with no backing file
func New() *Buffer {
	return &Buffer{
		lines: [][]rune{{}},
	}
}

// Load creates a buffer from file content, bound to path
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	b := &Buffer{
		lines: splitLines(string(data)),
		path:  path,
	}
	return b, nil
}

// splitLines splits text on newlines into rune slices
func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// Data returns full buffer content as a string
func (b *Buffer) Data() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// LineCount returns the number of lines, at least 1
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line i as a string, empty when out of range
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// Lines returns all lines as strings
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// Cursor returns the current cursor position
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// Modified reports whether the buffer changed since the last save
func (b *Buffer) Modified() bool {
	return b.modified
}

// Path returns the backing file path, empty when unbacked
func (b *Buffer) Path() string {
	return b.path
}

// FileName returns the display name of the backing file, empty when unbacked
func (b *Buffer) FileName() string {
	if b.path == "" {
		return ""
	}
	return filepath.Base(b.path)
}

// --- Cursor motion ---

// MoveUp moves the cursor one line up, clamping the offset to the new line
func (b *Buffer) MoveUp() {
	if b.cursor.Line == 0 {
		return
	}
	b.cursor.Line--
	b.clampOffset()
}

// MoveDown moves the cursor one line down, clamping the offset to the new line
func (b *Buffer) MoveDown() {
	if b.cursor.Line >= len(b.lines)-1 {
		return
	}
	b.cursor.Line++
	b.clampOffset()
}

// MoveLeft moves the cursor one rune left within the line
func (b *Buffer) MoveLeft() {
	if b.cursor.Offset > 0 {
		b.cursor.Offset--
	}
}

// MoveRight moves the cursor one rune right within the line, stopping at the
// end of line rather than wrapping
func (b *Buffer) MoveRight() {
	if b.cursor.Offset < len(b.lines[b.cursor.Line]) {
		b.cursor.Offset++
	}
}

// MoveTo places the cursor at the given position, clamped to valid bounds
func (b *Buffer) MoveTo(line, offset int) {
	if line < 0 {
		line = 0
	}
	if line >= len(b.lines) {
		line = len(b.lines) - 1
	}
	b.cursor.Line = line
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.lines[line]) {
		offset = len(b.lines[line])
	}
	b.cursor.Offset = offset
}

// MoveToEndOfLine places the cursor after the last rune of the current line
func (b *Buffer) MoveToEndOfLine() {
	b.cursor.Offset = len(b.lines[b.cursor.Line])
}

func (b *Buffer) clampOffset() {
	if n := len(b.lines[b.cursor.Line]); b.cursor.Offset > n {
		b.cursor.Offset = n
	}
}

// --- Editing ---

// Insert places s at the cursor without moving the cursor. Newlines in s
// split the current line.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	b.pushUndo()

	line := b.lines[b.cursor.Line]
	prefix := line[:b.cursor.Offset]
	suffix := line[b.cursor.Offset:]

	parts := splitLines(s)
	if len(parts) == 1 {
		merged := make([]rune, 0, len(line)+len(parts[0]))
		merged = append(merged, prefix...)
		merged = append(merged, parts[0]...)
		merged = append(merged, suffix...)
		b.lines[b.cursor.Line] = merged
	} else {
		first := append(append([]rune{}, prefix...), parts[0]...)
		last := append(append([]rune{}, parts[len(parts)-1]...), suffix...)

		inserted := make([][]rune, 0, len(parts))
		inserted = append(inserted, first)
		inserted = append(inserted, parts[1:len(parts)-1]...)
		inserted = append(inserted, last)

		tail := b.lines[b.cursor.Line+1:]
		newLines := make([][]rune, 0, len(b.lines)+len(parts)-1)
		newLines = append(newLines, b.lines[:b.cursor.Line]...)
		newLines = append(newLines, inserted...)
		newLines = append(newLines, tail...)
		b.lines = newLines
	}

	b.modified = true
}

// Delete removes the rune at the cursor. At the end of a line it joins the
// next line instead, at the end of the buffer it is a no-op.
func (b *Buffer) Delete() {
	line := b.lines[b.cursor.Line]
	if b.cursor.Offset < len(line) {
		b.pushUndo()
		b.lines[b.cursor.Line] = append(line[:b.cursor.Offset], line[b.cursor.Offset+1:]...)
		b.modified = true
		return
	}
	if b.cursor.Line < len(b.lines)-1 {
		b.pushUndo()
		next := b.lines[b.cursor.Line+1]
		b.lines[b.cursor.Line] = append(line, next...)
		b.lines = append(b.lines[:b.cursor.Line+1], b.lines[b.cursor.Line+2:]...)
		b.modified = true
	}
}

// --- History ---

// pushUndo records current content before a mutation and clears redo
func (b *Buffer) pushUndo() {
	b.undo = append(b.undo, b.capture())
	b.redo = nil
}

func (b *Buffer) capture() snapshot {
	lines := make([][]rune, len(b.lines))
	for i, line := range b.lines {
		lines[i] = append([]rune{}, line...)
	}
	return snapshot{lines: lines, cursor: b.cursor}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = s.lines
	b.cursor = s.cursor
	b.clampOffset()
	b.modified = true
}

// Undo reverts the most recent edit, returns false when history is empty
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	b.redo = append(b.redo, b.capture())
	last := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.restore(last)
	return true
}

// Redo reapplies the most recently undone edit
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	b.undo = append(b.undo, b.capture())
	last := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.restore(last)
	return true
}

// --- Persistence ---

// Save writes content to the backing file, error when unbacked
func (b *Buffer) Save() error {
	if b.path == "" {
		return fmt.Errorf("buffer has no backing file")
	}
	return b.SaveAs(b.path)
}

// SaveAs writes content to path and rebinds the buffer to it
func (b *Buffer) SaveAs(path string) error {
	if err := os.WriteFile(path, []byte(b.Data()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	b.path = path
	b.modified = false
	return nil
}
