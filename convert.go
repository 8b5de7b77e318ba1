package gazeseg

import (
	"fmt"
	"sort"
)

// PositionMode selects how segment breakpoint positions are expressed.
type PositionMode int

const (
	// PositionTime expresses breakpoints as values on the time vector.
	PositionTime PositionMode = iota

	// PositionIndex expresses breakpoints as sample indices.
	PositionIndex
)

// DiscreteToContinuous expands a sparse (breakpoint, label) segmentation
// into one label per sample of times. Each breakpoint's label covers the
// samples up to the next breakpoint; the last label extends to the end.
// Samples before the first breakpoint are labeled "None".
//
// Breakpoints are interpreted per mode: PositionIndex treats them as
// sample indices, PositionTime resolves each against times, claiming the
// first sample whose timestamp is not below the breakpoint.
func DiscreteToContinuous(times, breakpoints []float64, labels []string, mode PositionMode) ([]string, error) {
	if len(breakpoints) != len(labels) {
		return nil, &MalformedSegmentationError{
			Reason: fmt.Sprintf("%d breakpoints but %d labels", len(breakpoints), len(labels)),
		}
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i] <= breakpoints[i-1] {
			return nil, &MalformedSegmentationError{
				Reason: fmt.Sprintf("breakpoints not strictly increasing at position %d", i),
			}
		}
	}

	starts := make([]int, len(breakpoints))
	for i, bp := range breakpoints {
		idx, err := resolvePosition(times, bp, mode)
		if err != nil {
			return nil, err
		}
		starts[i] = idx
	}

	out := make([]string, len(times))
	for i := range out {
		out[i] = LabelNone
	}
	for k, start := range starts {
		end := len(times)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		for i := start; i < end; i++ {
			out[i] = labels[k]
		}
	}
	return out, nil
}

// ContinuousToDiscrete scans a per-sample labeling and emits one
// breakpoint wherever the label changes; the first sample always opens a
// segment. No two consecutive emitted segments share a label. Positions
// are reported as times[i] or float64(i) per mode.
//
// PositionTime cannot distinguish samples sharing a timestamp: a label
// change at a duplicated timestamp yields two equal time positions,
// which DiscreteToContinuous rejects as non-increasing. Use
// PositionIndex to round-trip such vectors.
func ContinuousToDiscrete(times []float64, labels []string, mode PositionMode) ([]float64, []string, error) {
	if len(labels) != len(times) {
		return nil, nil, &MalformedSegmentationError{
			Reason: fmt.Sprintf("%d continuous labels but %d time samples", len(labels), len(times)),
		}
	}

	var positions []float64
	var segLabels []string
	for i, label := range labels {
		if i > 0 && label == labels[i-1] {
			continue
		}
		if mode == PositionIndex {
			positions = append(positions, float64(i))
		} else {
			positions = append(positions, times[i])
		}
		segLabels = append(segLabels, label)
	}
	return positions, segLabels, nil
}

// resolvePosition maps one breakpoint to a sample index.
func resolvePosition(times []float64, bp float64, mode PositionMode) (int, error) {
	if mode == PositionIndex {
		idx := int(bp)
		if float64(idx) != bp {
			return 0, &MalformedSegmentationError{
				Reason: fmt.Sprintf("index breakpoint %v is not an integer", bp),
			}
		}
		if idx < 0 || idx >= len(times) {
			return 0, &MalformedSegmentationError{
				Reason: fmt.Sprintf("index breakpoint %d out of range [0, %d)", idx, len(times)),
			}
		}
		return idx, nil
	}

	idx := sort.SearchFloat64s(times, bp)
	if idx == len(times) {
		return 0, &MalformedSegmentationError{
			Reason: fmt.Sprintf("time breakpoint %v is beyond the last sample", bp),
		}
	}
	return idx, nil
}
