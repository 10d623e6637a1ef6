package textutil

import (
	"errors"
	"reflect"
	"testing"

	pkgerrors "textkit/pkg/errors"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits on one line", "a b c", 10, []string{"a b c"}},
		{"packs greedily", "aa bb cc dd", 5, []string{"aa bb", "cc dd"}},
		{"splits long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"empty text", "", 10, []string{}},
		{"collapses whitespace", "a\n  b\tc", 10, []string{"a b c"}},
		// A word exactly at the width flushes the (empty) current line
		// first, so a leading empty line appears.
		{"exact width word", "abcd", 4, []string{"", "abcd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wrap(tt.text, tt.width)
			if err != nil {
				t.Fatalf("Wrap error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %#v, want %#v", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapInvalidWidth(t *testing.T) {
	if _, err := Wrap("text", 0); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("short", 10); got != "short" {
		t.Errorf("Preview(short) = %q", got)
	}
	if got := Preview("a longer string", 8); got != "a longer..." {
		t.Errorf("Preview = %q", got)
	}
}

func TestInsertHyphen(t *testing.T) {
	got, err := InsertHyphen("abcdef", 3)
	if err != nil {
		t.Fatalf("InsertHyphen error: %v", err)
	}
	if got != "abc-def" {
		t.Errorf("InsertHyphen = %q", got)
	}

	for _, index := range []int{-1, 6} {
		if _, err := InsertHyphen("abcdef", index); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
			t.Errorf("index %d: expected ErrInvalidArgument, got %v", index, err)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("toolong", 3); got != "toolong" {
		t.Errorf("PadRight over width = %q", got)
	}
	// Width counts runes, not bytes.
	if got := PadLeft("£", 3); got != "  £" {
		t.Errorf("PadLeft multi-byte = %q", got)
	}
}
