package gazeseg

import "fmt"

// MalformedInputError reports gaze arrays that violate the input
// contract: mismatched array lengths, a non-monotonic time vector, or
// a non-positive sampling rate.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

// UnknownLabelError reports a native backend label that is absent from
// the taxonomy table. Well-formed backend output never produces this,
// so it indicates a backend/version mismatch and is always fatal.
type UnknownLabelError struct {
	Taxonomy string
	Native   string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown native label %q in taxonomy %q", e.Native, e.Taxonomy)
}

// MalformedSegmentationError reports a segmentation that violates the
// conversion contract: breakpoints not strictly increasing, positions
// outside the time vector, or a breakpoint/label length mismatch.
type MalformedSegmentationError struct {
	Reason string
}

func (e *MalformedSegmentationError) Error() string {
	return "malformed segmentation: " + e.Reason
}

// IrregularSamplingWarning describes non-uniform sample spacing in an
// explicit time vector. It is non-fatal: classification proceeds using
// the mean spacing as the effective sampling rate, at the cost of
// degraded classifier performance.
type IrregularSamplingWarning struct {
	// SpacingStd is the standard deviation of consecutive time
	// differences that tripped the tolerance.
	SpacingStd float64

	// MeanSpacing is the mean consecutive time difference used in
	// place of a uniform spacing.
	MeanSpacing float64

	// EffectiveRate is 1 / MeanSpacing, the sampling rate handed to
	// the classifier.
	EffectiveRate float64
}

func (w *IrregularSamplingWarning) String() string {
	return fmt.Sprintf("irregular sampling (spacing std %g); using mean spacing %g (%.6g Hz)",
		w.SpacingStd, w.MeanSpacing, w.EffectiveRate)
}
