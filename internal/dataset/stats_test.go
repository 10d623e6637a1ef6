package dataset

import (
	"errors"
	"math"
	"strings"
	"testing"

	pkgerrors "textkit/pkg/errors"
)

func TestDescribe(t *testing.T) {
	frame := mustFrame(t, []string{"v"}, [][]string{
		{"1"}, {"2"}, {"3"}, {"4"}, {""},
	})
	stats, err := frame.Describe("v")
	if err != nil {
		t.Fatalf("Describe error: %v", err)
	}
	s := stats[0]

	if s.Count != 4 || s.Missing != 1 {
		t.Errorf("count = %d, missing = %d", s.Count, s.Missing)
	}
	if s.Mean != 2.5 {
		t.Errorf("mean = %v", s.Mean)
	}
	// Sample variance of 1..4 is 5/3.
	if math.Abs(s.Var-5.0/3.0) > 1e-12 {
		t.Errorf("var = %v", s.Var)
	}
	if s.Min != 1 || s.Max != 4 || s.Range != 3 {
		t.Errorf("min/max/range = %v/%v/%v", s.Min, s.Max, s.Range)
	}
	// Linear interpolation between closest ranks.
	if s.Q1 != 1.75 || s.Median != 2.5 || s.Q3 != 3.25 {
		t.Errorf("quartiles = %v/%v/%v", s.Q1, s.Median, s.Q3)
	}
	if s.IQR != 1.5 {
		t.Errorf("IQR = %v", s.IQR)
	}
	// 1..4 is symmetric.
	if math.Abs(s.Skew) > 1e-12 {
		t.Errorf("skew = %v", s.Skew)
	}
}

func TestDescribeSkewedSample(t *testing.T) {
	frame := mustFrame(t, []string{"v"}, [][]string{
		{"1"}, {"1"}, {"1"}, {"10"},
	})
	stats, err := frame.Describe("v")
	if err != nil {
		t.Fatalf("Describe error: %v", err)
	}
	if stats[0].Skew <= 0 {
		t.Errorf("right-tailed sample should have positive skew, got %v", stats[0].Skew)
	}
}

func TestDescribeEmptyColumn(t *testing.T) {
	frame := mustFrame(t, []string{"v"}, [][]string{{""}, {"x"}})
	stats, err := frame.Describe("v")
	if err != nil {
		t.Fatalf("Describe error: %v", err)
	}
	s := stats[0]
	if s.Count != 0 || s.Missing != 2 {
		t.Errorf("count = %d, missing = %d", s.Count, s.Missing)
	}
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.Median) {
		t.Errorf("empty column stats should be NaN: %+v", s)
	}
}

func TestDescribeUnknownColumn(t *testing.T) {
	frame := mustFrame(t, []string{"v"}, [][]string{{"1"}})
	if _, err := frame.Describe("w"); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRenderStats(t *testing.T) {
	frame := mustFrame(t, []string{"a", "b"}, [][]string{
		{"1", "10"},
		{"2", "20"},
		{"3", "30"},
	})
	stats, err := frame.Describe()
	if err != nil {
		t.Fatalf("Describe error: %v", err)
	}
	out := RenderStats(stats)
	lines := strings.Split(out, "\n")

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			t.Errorf("line %d width %d, want %d: %q", i, len(line), width, line)
		}
	}
	if !strings.Contains(lines[1], "a") || !strings.Contains(lines[1], "b") {
		t.Errorf("header = %q", lines[1])
	}
	if !strings.Contains(out, "mean") || !strings.Contains(out, "2.0000") {
		t.Errorf("stats rows missing:\n%s", out)
	}
}

func TestRenderStatsEmpty(t *testing.T) {
	if got := RenderStats(nil); got != "No columns described." {
		t.Errorf("RenderStats(nil) = %q", got)
	}
}
