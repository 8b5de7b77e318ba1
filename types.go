package gazeseg

// NSLRRawOutput surfaces the index-based backend's three native
// artifacts verbatim, for callers that need backend-specific detail.
type NSLRRawOutput struct {
	// SampleClasses is the per-sample native class id array.
	SampleClasses []int

	// Segments is the backend's native segment list.
	Segments []IndexSegment

	// SegmentClasses holds one native class id per segment.
	SegmentClasses []int
}

// Result is the canonical output of a classification call.
type Result struct {
	// Segments holds breakpoint positions in discrete form, or the
	// resolved time vector in continuous form. Parallel to Labels.
	Segments []float64

	// Labels holds one canonical label per breakpoint (discrete) or
	// per sample (continuous).
	Labels []string

	// Discrete records which representation was produced.
	Discrete bool

	// Warning is set when irregular sample spacing was detected and
	// the mean spacing was used as the effective sampling rate. Only
	// the interval-based path performs this check.
	Warning *IrregularSamplingWarning

	// RawNSLR surfaces the index-based backend's output verbatim when
	// requested.
	RawNSLR *NSLRRawOutput

	// RawEvents surfaces the interval-based backend's events when
	// requested, with times re-aligned to the caller's time base.
	RawEvents []IntervalEvent
}
