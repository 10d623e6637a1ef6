package dataset

import (
	"errors"
	"strings"
	"testing"

	pkgerrors "textkit/pkg/errors"
)

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})
	if !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFromCSV(t *testing.T) {
	frame, err := FromCSV(strings.NewReader("a,b\n1,2\n3,4\n"))
	if err != nil {
		t.Fatalf("FromCSV error: %v", err)
	}
	if frame.Len() != 2 || len(frame.Columns()) != 2 {
		t.Errorf("frame = %v rows, %v cols", frame.Len(), frame.Columns())
	}
	if frame.Rows()[1][0] != "3" {
		t.Errorf("rows = %v", frame.Rows())
	}
}

func TestFromCSVEmpty(t *testing.T) {
	if _, err := FromCSV(strings.NewReader("")); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("no/such/file.csv"); !errors.Is(err, pkgerrors.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestRowsReturnsCopy(t *testing.T) {
	frame, err := New([]string{"a"}, [][]string{{"1"}})
	if err != nil {
		t.Fatal(err)
	}
	frame.Rows()[0][0] = "mutated"
	if frame.Rows()[0][0] != "1" {
		t.Error("Rows exposed internal storage")
	}
}

func TestRemovedStats(t *testing.T) {
	r := RemovedStats(8, 6)
	if r.Count != 2 || r.Percent != 25 {
		t.Errorf("RemovedStats(8, 6) = %+v", r)
	}
	if got := r.String(); got != "2 rows removed (25.00%)" {
		t.Errorf("String = %q", got)
	}
	if r := RemovedStats(0, 0); r.Percent != 0 {
		t.Errorf("empty frame percent = %v", r.Percent)
	}
}
