package gazeseg

import "context"

// Point is a single 2D gaze coordinate.
type Point struct {
	X float64
	Y float64
}

// IndexSegment is the index-based backend's native segment record. Each
// segment starts at a sample index of the input trace.
type IndexSegment struct {
	StartIndex int
	StartTime  float64
	EndTime    float64
}

// IntervalEvent is the interval-based backend's native event record.
// The backend reports times relative to the preprocessed data's local
// origin (starting at 0); the adapter re-aligns them to the caller's
// time base before surfacing them. Label is the native 4-character
// code, e.g. "FIXA".
type IntervalEvent struct {
	StartTime float64
	EndTime   float64
	Label     string
}

// NSLRBackendOptions enumerates the recognized NSLR-HMM tuning knobs.
// Nil fields take the backend's defaults.
type NSLRBackendOptions struct {
	// StructuralError scales the segmentation's structural error term.
	StructuralError *float64

	// OptimizeNoise enables the backend's noise-level optimization.
	OptimizeNoise *bool
}

// NSLRBackend is the contract of the index-based classifier. Given a
// time vector and gaze points in degrees, it returns a per-sample class
// id array, its native segment list, and one class id per segment.
// Implementations may mutate the input slices in place.
type NSLRBackend interface {
	ClassifyGaze(ctx context.Context, times []float64, points []Point, opts NSLRBackendOptions) (sampleClasses []int, segments []IndexSegment, segmentClasses []int, err error)
}

// RemodnavClassifierOptions enumerates the recognized REMoDNaV
// construction parameters. Nil fields take the backend's defaults.
type RemodnavClassifierOptions struct {
	VelthreshStartVelocity     *float64
	MinIntersaccadeDuration    *float64
	MinSaccadeDuration         *float64
	MaxInitialSaccadeFreq      *float64
	SaccadeContextWindowLength *float64
	MaxPSODuration             *float64
	MinFixationDuration        *float64
	MinPursuitDuration         *float64
	PursuitVelthresh           *float64
	NoiseFactor                *float64
	VelthreshPercentile        *float64
	MaxVelocity                *float64
	LowpassCutoffFreq          *float64
}

// RemodnavPreprocessOptions enumerates the recognized preprocessing
// parameters. Nil fields take the backend's defaults.
type RemodnavPreprocessOptions struct {
	MinBlinkDuration   *float64
	DilateNaN          *float64
	MedianFilterLength *float64
	SavgolLength       *float64
	SavgolPolyord      *int
	MaxVelocity        *float64
}

// RemodnavProcessOptions enumerates the recognized classification-call
// parameters. Nil fields take the backend's defaults.
type RemodnavProcessOptions struct {
	SortEvents *bool
}

// RemodnavClassifier is a constructed interval-based classifier
// instance. Implementations may mutate the input slices in place.
type RemodnavClassifier interface {
	Preprocess(ctx context.Context, data []Point, opts RemodnavPreprocessOptions) ([]Point, error)
	Run(ctx context.Context, data []Point, opts RemodnavProcessOptions) ([]IntervalEvent, error)
}

// RemodnavFactory constructs interval-based classifier instances for a
// given pixel-to-degree ratio and sampling rate.
type RemodnavFactory interface {
	New(px2deg, samplingRate float64, opts RemodnavClassifierOptions) (RemodnavClassifier, error)
}
