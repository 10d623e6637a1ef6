package comments

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderShape(t *testing.T) {
	out, err := testSet().Render(RenderOptions{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	lines := strings.Split(out, "\n")

	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if w := utf8.RuneCountInString(line); w != width {
			t.Errorf("line %d width %d, want %d: %q", i, w, width, line)
		}
	}
	if !strings.Contains(lines[1], "Post ID") || !strings.Contains(lines[1], "Body") {
		t.Errorf("header = %q", lines[1])
	}

	// One separator after the header plus one after each record.
	separators := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "---") {
			separators++
		}
	}
	if want := 2 + testSet().Len(); separators != want {
		t.Errorf("separator count = %d, want %d", separators, want)
	}
}

func TestRenderWrapsBody(t *testing.T) {
	set := NewSet([]Comment{{ID: 1, PostID: 1, Name: "n", Email: "e", Body: strings.Repeat("word ", 12)}})
	out, err := set.Render(RenderOptions{BodyWrapWidth: 10})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| ") {
			rows++
		}
	}
	// Twelve four-rune words at width 10 pack two per line, plus the header row.
	if rows != 7 {
		t.Errorf("row count = %d, want 7:\n%s", rows, out)
	}
}

func TestRenderPreviewTruncates(t *testing.T) {
	set := NewSet([]Comment{{
		ID: 1, PostID: 1,
		Name:  "a very long comment name well over the limit",
		Email: "e@x.y",
		Body:  "a body that is definitely longer than twenty six runes",
	}})
	out, err := set.Render(RenderOptions{Preview: true})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(out, "a very long comm...") {
		t.Errorf("name not previewed:\n%s", out)
	}
	if !strings.Contains(out, "a body that is definitely ...") {
		t.Errorf("body not previewed:\n%s", out)
	}
}

func TestRenderPostInfoColumn(t *testing.T) {
	set := NewSet([]Comment{{
		ID: 1, PostID: 1, Name: "n", Email: "e", Body: "b",
		PostInfo: "Time: 01:02:03\nDate: 2015:06:07\nIP address: 1.2.3.4",
	}})

	without, err := set.Render(RenderOptions{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Contains(without, "Post Info") {
		t.Error("post info column rendered without ShowPostInfo")
	}

	with, err := set.Render(RenderOptions{ShowPostInfo: true})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(with, "Post Info") || !strings.Contains(with, "Time: 01:02:03") {
		t.Errorf("post info column missing:\n%s", with)
	}
	// The IP line exceeds the column width and wraps rather than breaking
	// the border.
	for _, line := range strings.Split(with, "\n") {
		if utf8.RuneCountInString(line) != utf8.RuneCountInString(strings.Split(with, "\n")[0]) {
			t.Errorf("misaligned line: %q", line)
		}
	}
}

func TestRenderEmptySet(t *testing.T) {
	out, err := NewSet(nil).Render(RenderOptions{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if out != "No comments found." {
		t.Errorf("Render = %q", out)
	}
}
