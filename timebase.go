package gazeseg

import (
	"fmt"
	"math"
)

// Times carries the sampling time base of a gaze trace: either an
// explicit time vector or a scalar sampling rate from which a uniform
// vector starting at 0 is synthesized.
type Times struct {
	vec  []float64
	rate float64
}

// TimeVector wraps an explicit, non-decreasing time vector (seconds).
func TimeVector(v []float64) Times { return Times{vec: v} }

// SamplingRate wraps a scalar sampling rate (Hz). A trace of n samples
// resolves to the vector [0, 1/hz, 2/hz, ..., (n-1)/hz].
func SamplingRate(hz float64) Times { return Times{rate: hz} }

// resolve materializes the time vector for a trace of n samples. The
// returned slice is always a fresh copy.
func (t Times) resolve(n int) ([]float64, error) {
	if t.vec != nil {
		if len(t.vec) != n {
			return nil, &MalformedInputError{
				Reason: fmt.Sprintf("time vector has %d samples, gaze arrays have %d", len(t.vec), n),
			}
		}
		out := make([]float64, n)
		copy(out, t.vec)
		for i := 1; i < n; i++ {
			if out[i] < out[i-1] {
				return nil, &MalformedInputError{
					Reason: fmt.Sprintf("time vector decreases at sample %d", i),
				}
			}
		}
		return out, nil
	}

	if t.rate <= 0 {
		return nil, &MalformedInputError{Reason: "sampling rate must be positive"}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / t.rate
	}
	return out, nil
}

// spacingStats returns the mean and population standard deviation of
// consecutive time differences. Both are 0 for fewer than two samples.
func spacingStats(times []float64) (mean, std float64) {
	if len(times) < 2 {
		return 0, 0
	}
	n := float64(len(times) - 1)
	for i := 1; i < len(times); i++ {
		mean += times[i] - times[i-1]
	}
	mean /= n
	for i := 1; i < len(times); i++ {
		d := times[i] - times[i-1] - mean
		std += d * d
	}
	return mean, math.Sqrt(std / n)
}
