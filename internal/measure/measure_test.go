package measure

import (
	"errors"
	"testing"

	pkgerrors "textkit/pkg/errors"
)

func TestInvestigateSizes(t *testing.T) {
	var seen []int
	results, err := Investigate(func(n int) { seen = append(seen, n) }, 3, 10)
	if err != nil {
		t.Fatalf("Investigate error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []int{10, 20, 30} {
		if seen[i] != want || results[i].Size != want {
			t.Errorf("step %d: ran at %d, recorded %d, want %d", i, seen[i], results[i].Size, want)
		}
	}
}

func TestInvestigateRecordsAllocation(t *testing.T) {
	var sink []byte
	results, err := Investigate(func(n int) { sink = make([]byte, n*1024) }, 2, 64)
	if err != nil {
		t.Fatalf("Investigate error: %v", err)
	}
	_ = sink
	for _, r := range results {
		if r.Bytes == 0 {
			t.Errorf("size %d recorded zero allocated bytes", r.Size)
		}
		if r.Seconds < 0 {
			t.Errorf("size %d recorded negative duration", r.Size)
		}
	}
}

func TestInvestigateInvalidArguments(t *testing.T) {
	if _, err := Investigate(nil, 3, 10); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Errorf("nil fn: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Investigate(func(int) {}, 0, 10); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Errorf("zero steps: expected ErrInvalidArgument, got %v", err)
	}
}

func TestValueUnknownMetric(t *testing.T) {
	if _, err := (Result{}).Value("cycles"); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
