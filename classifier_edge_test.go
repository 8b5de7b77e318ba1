package gazeseg

import (
	"errors"
	"testing"
)

func TestPrepareInputsLengthMismatch(t *testing.T) {
	_, _, _, err := prepareInputs([]float64{1, 2, 3}, []float64{1, 2}, SamplingRate(100))
	var inputErr *MalformedInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}
}

// TestPrepareInputsCopies verifies a backend mutating its inputs can
// never corrupt the caller's arrays.
func TestPrepareInputsCopies(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	times := []float64{0, 0.1, 0.2}

	xs, ys, ts, err := prepareInputs(x, y, TimeVector(times))
	if err != nil {
		t.Fatalf("prepareInputs failed: %v", err)
	}

	xs[0], ys[0], ts[0] = -1, -1, -1

	if x[0] != 1 || y[0] != 4 || times[0] != 0 {
		t.Error("prepareInputs aliased the caller's arrays")
	}
}

func TestPrepareInputsEmptyTrace(t *testing.T) {
	xs, ys, ts, err := prepareInputs(nil, nil, SamplingRate(100))
	if err != nil {
		t.Fatalf("prepareInputs failed: %v", err)
	}
	if len(xs) != 0 || len(ys) != 0 || len(ts) != 0 {
		t.Errorf("expected empty outputs, got %d/%d/%d samples", len(xs), len(ys), len(ts))
	}
}

func TestResolvePositionEdges(t *testing.T) {
	times := []float64{0, 0.1, 0.2, 0.3}

	tests := []struct {
		name string
		bp   float64
		mode PositionMode
		want int
		ok   bool
	}{
		{name: "exact time", bp: 0.1, mode: PositionTime, want: 1, ok: true},
		{name: "time between samples", bp: 0.15, mode: PositionTime, want: 2, ok: true},
		{name: "time before first sample", bp: -1, mode: PositionTime, want: 0, ok: true},
		{name: "time beyond last sample", bp: 0.5, mode: PositionTime, ok: false},
		{name: "valid index", bp: 3, mode: PositionIndex, want: 3, ok: true},
		{name: "negative index", bp: -1, mode: PositionIndex, ok: false},
		{name: "index past end", bp: 4, mode: PositionIndex, ok: false},
		{name: "fractional index", bp: 1.5, mode: PositionIndex, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePosition(times, tt.bp, tt.mode)
			if tt.ok {
				if err != nil {
					t.Fatalf("resolvePosition failed: %v", err)
				}
				if got != tt.want {
					t.Errorf("resolvePosition = %d, want %d", got, tt.want)
				}
				return
			}
			var segErr *MalformedSegmentationError
			if !errors.As(err, &segErr) {
				t.Errorf("expected MalformedSegmentationError, got %v", err)
			}
		})
	}
}
