package tui

import "github.com/mattn/go-runewidth"

// DisplayWidth returns the number of terminal columns the string occupies
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if exceeds maxLen
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// PadLeft left-pads string with spaces to width
func PadLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	result := make([]rune, width)
	padding := width - len(runes)
	for i := 0; i < padding; i++ {
		result[i] = ' '
	}
	copy(result[padding:], runes)
	return string(result)
}

// RuneLen returns rune count (not byte count)
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// WrapText wraps text at word boundaries to fit width
// Returns slice of lines, each no longer than width
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lastSpace := -1

	for i := 0; i <= len(runes); i++ {
		// Check if we need to wrap
		if i-lineStart >= width || i == len(runes) {
			if i == len(runes) {
				// End of string
				if lineStart < len(runes) {
					lines = append(lines, string(runes[lineStart:]))
				}
				break
			}

			// Need to wrap
			wrapAt := i
			if lastSpace > lineStart {
				// Wrap at last space
				wrapAt = lastSpace
			}

			lines = append(lines, string(runes[lineStart:wrapAt]))

			// Skip space at wrap point
			if wrapAt < len(runes) && runes[wrapAt] == ' ' {
				lineStart = wrapAt + 1
			} else {
				lineStart = wrapAt
			}
			lastSpace = -1
		}

		// Track spaces for word wrapping
		if i < len(runes) && runes[i] == ' ' {
			lastSpace = i
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}

	return lines
}
