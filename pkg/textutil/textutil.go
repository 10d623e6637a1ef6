// Package textutil provides the small string helpers shared by the table
// renderers: hard wrapping to a column width, preview truncation, hyphen
// insertion, and rune-aware padding.
package textutil

import (
	"strings"
	"unicode/utf8"

	pkgerrors "textkit/pkg/errors"
)

// Wrap splits text into lines no wider than width runes. Newlines in the
// input are treated as ordinary whitespace. Words longer than the width are
// split mid-word; shorter words are packed greedily.
func Wrap(text string, width int) ([]string, error) {
	if width < 1 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "wrap width must be positive, got %d", width)
	}

	words := strings.Fields(text)
	lines := []string{}
	current := ""

	for _, word := range words {
		runes := []rune(word)
		for len(runes) > width {
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		word = string(runes)

		if utf8.RuneCountInString(current)+len(runes)+1 <= width {
			if current != "" {
				current += " "
			}
			current += word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines, nil
}

// Preview truncates text to max runes, appending "..." when it was cut.
func Preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return text
}

// InsertHyphen returns s with a hyphen inserted before the rune at index.
func InsertHyphen(s string, index int) (string, error) {
	runes := []rune(s)
	if index < 0 || index >= len(runes) {
		return "", pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "hyphen index %d out of bounds for %q", index, s)
	}
	return string(runes[:index]) + "-" + string(runes[index:]), nil
}

// PadRight pads s with trailing spaces to width runes. Strings already at or
// over the width are returned unchanged.
func PadRight(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// PadLeft pads s with leading spaces to width runes.
func PadLeft(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}
