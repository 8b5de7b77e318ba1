package gazeseg

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// spacingStdTolerance bounds the standard deviation of consecutive
// sample spacings before an explicit time vector counts as irregular.
// Same unit as the time vector.
const spacingStdTolerance = 1e-5

// Classifier normalizes the output of the configured gaze-event
// backends into the canonical segmentation representation. It holds no
// per-call state; methods are safe for concurrent use as long as the
// backends are.
type Classifier struct {
	nslr           NSLRBackend
	remodnav       RemodnavFactory
	nslrTaxonomy   *IDTaxonomy
	remodnavFull   *CodeTaxonomy
	remodnavSimple *CodeTaxonomy
	log            logrus.FieldLogger
}

// New creates a Classifier with the given configuration.
func New(cfg Config) *Classifier {
	cfg.applyDefaults()

	return &Classifier{
		nslr:           cfg.NSLR,
		remodnav:       cfg.Remodnav,
		nslrTaxonomy:   cfg.NSLRTaxonomy,
		remodnavFull:   cfg.RemodnavTaxonomy,
		remodnavSimple: cfg.RemodnavSimpleTaxonomy,
		log:            cfg.Logger,
	}
}

// NSLROptions control a ClassifyNSLR call.
type NSLROptions struct {
	// ReturnDiscrete selects the sparse (breakpoint, label)
	// representation instead of one label per sample.
	ReturnDiscrete bool

	// ReturnRaw additionally surfaces the backend's native artifacts.
	ReturnRaw bool

	// Backend is forwarded to the NSLR-HMM invocation.
	Backend NSLRBackendOptions
}

// ClassifyNSLR runs the index-based backend over one gaze trace. x and
// y must be in degrees; times is an explicit vector or a scalar rate.
//
// The backend's native segments each carry a start index into the
// trace; those start indices become the discrete breakpoints. Discrete
// positions are reported on the caller's time base. The backend already
// consumes the real time vector, so no re-alignment is applied to its
// output.
func (c *Classifier) ClassifyNSLR(ctx context.Context, x, y []float64, times Times, opts NSLROptions) (*Result, error) {
	if c.nslr == nil {
		return nil, fmt.Errorf("no NSLR backend configured")
	}

	xs, ys, ts, err := prepareInputs(x, y, times)
	if err != nil {
		return nil, err
	}
	log := c.log.WithField("call", uuid.NewString())

	points := make([]Point, len(xs))
	for i := range points {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	sampleClasses, segments, segmentClasses, err := c.nslr.ClassifyGaze(ctx, ts, points, opts.Backend)
	if err != nil {
		return nil, err
	}
	if len(segments) != len(segmentClasses) {
		return nil, &MalformedSegmentationError{
			Reason: fmt.Sprintf("backend returned %d segments but %d segment classes", len(segments), len(segmentClasses)),
		}
	}

	// Discrete breakpoints are each native segment's start index.
	breakpoints := make([]float64, len(segments))
	labels := make([]string, len(segments))
	for i, seg := range segments {
		if seg.StartIndex < 0 || seg.StartIndex >= len(ts) {
			return nil, &MalformedSegmentationError{
				Reason: fmt.Sprintf("segment %d starts at index %d, outside [0, %d)", i, seg.StartIndex, len(ts)),
			}
		}
		breakpoints[i] = float64(seg.StartIndex)
		labels[i], err = c.nslrTaxonomy.Lookup(segmentClasses[i])
		if err != nil {
			return nil, err
		}
	}

	res := &Result{Discrete: opts.ReturnDiscrete}
	if opts.ReturnDiscrete {
		positions := make([]float64, len(segments))
		for i, seg := range segments {
			positions[i] = ts[seg.StartIndex]
		}
		res.Segments = positions
		res.Labels = labels
	} else {
		continuous, err := DiscreteToContinuous(ts, breakpoints, labels, PositionIndex)
		if err != nil {
			return nil, err
		}
		res.Segments = ts
		res.Labels = continuous
	}
	if opts.ReturnRaw {
		res.RawNSLR = &NSLRRawOutput{
			SampleClasses:  sampleClasses,
			Segments:       segments,
			SegmentClasses: segmentClasses,
		}
	}

	log.WithFields(logrus.Fields{
		"samples":  len(points),
		"segments": len(segments),
		"discrete": opts.ReturnDiscrete,
	}).Debug("nslr classification complete")

	return res, nil
}

// RemodnavOptions control a ClassifyRemodnav call.
type RemodnavOptions struct {
	// ReturnDiscrete selects the sparse (breakpoint, label)
	// representation instead of one label per sample.
	ReturnDiscrete bool

	// ReturnRaw additionally surfaces the backend's re-aligned events.
	ReturnRaw bool

	// Simplified collapses the direction/quality-refined saccade and
	// PSO variants into their base categories.
	Simplified bool

	// Classifier is forwarded to backend construction.
	Classifier RemodnavClassifierOptions

	// Preprocess is forwarded to the preprocessing step.
	Preprocess RemodnavPreprocessOptions

	// Process is forwarded to the classification call.
	Process RemodnavProcessOptions
}

// ClassifyRemodnav runs the interval-based backend over one gaze trace.
// px2deg is the pixel-to-degree ratio; pass 1 if x and y are already in
// degrees. times is an explicit vector or a scalar rate.
//
// An explicit time vector is checked for uniform spacing: if the
// standard deviation of consecutive differences exceeds the tolerance,
// a warning is logged and surfaced on the result, and the mean spacing
// is used as the effective sampling rate. The backend reports event
// times relative to the preprocessed data's local origin; they are
// shifted by times[0] so the output sits on the caller's time base.
func (c *Classifier) ClassifyRemodnav(ctx context.Context, x, y []float64, times Times, px2deg float64, opts RemodnavOptions) (*Result, error) {
	if c.remodnav == nil {
		return nil, fmt.Errorf("no REMoDNaV factory configured")
	}
	if px2deg <= 0 {
		return nil, &MalformedInputError{Reason: "px2deg must be positive"}
	}

	xs, ys, ts, err := prepareInputs(x, y, times)
	if err != nil {
		return nil, err
	}
	log := c.log.WithField("call", uuid.NewString())

	mean, std := spacingStats(ts)
	if mean <= 0 {
		return nil, &MalformedInputError{Reason: "time vector too short to infer a sampling rate"}
	}
	res := &Result{Discrete: opts.ReturnDiscrete}
	if std > spacingStdTolerance {
		res.Warning = &IrregularSamplingWarning{
			SpacingStd:    std,
			MeanSpacing:   mean,
			EffectiveRate: 1 / mean,
		}
		log.WithFields(logrus.Fields{
			"spacing_std":    std,
			"mean_spacing":   mean,
			"effective_rate": 1 / mean,
		}).Warn("irregular sampling detected, using mean sample spacing as the effective sampling rate; consider resampling to a fixed rate")
	}

	clf, err := c.remodnav.New(px2deg, 1/mean, opts.Classifier)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(xs))
	for i := range points {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	preprocessed, err := clf.Preprocess(ctx, points, opts.Preprocess)
	if err != nil {
		return nil, err
	}
	events, err := clf.Run(ctx, preprocessed, opts.Process)
	if err != nil {
		return nil, err
	}

	// Event times are local to the preprocessed data; shift them back
	// onto the caller's time base.
	aligned := make([]IntervalEvent, len(events))
	for i, ev := range events {
		aligned[i] = IntervalEvent{
			StartTime: ev.StartTime + ts[0],
			EndTime:   ev.EndTime + ts[0],
			Label:     ev.Label,
		}
	}

	taxonomy := c.remodnavFull
	if opts.Simplified {
		taxonomy = c.remodnavSimple
	}

	breakpoints := make([]float64, len(aligned))
	labels := make([]string, len(aligned))
	for i, ev := range aligned {
		breakpoints[i] = ev.StartTime
		labels[i], err = taxonomy.Lookup(ev.Label)
		if err != nil {
			return nil, err
		}
	}

	if opts.ReturnDiscrete {
		res.Segments = breakpoints
		res.Labels = labels
	} else {
		continuous, err := DiscreteToContinuous(ts, breakpoints, labels, PositionTime)
		if err != nil {
			return nil, err
		}
		res.Segments = ts
		res.Labels = continuous
	}
	if opts.ReturnRaw {
		res.RawEvents = aligned
	}

	log.WithFields(logrus.Fields{
		"samples":  len(points),
		"events":   len(events),
		"discrete": opts.ReturnDiscrete,
	}).Debug("remodnav classification complete")

	return res, nil
}

// prepareInputs validates the gaze arrays, resolves the time base and
// returns fresh copies of all three; a backend may mutate its inputs in
// place, so callers' arrays must never be handed over directly.
func prepareInputs(x, y []float64, times Times) (xs, ys, ts []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, nil, &MalformedInputError{
			Reason: fmt.Sprintf("x has %d samples, y has %d", len(x), len(y)),
		}
	}
	ts, err = times.resolve(len(x))
	if err != nil {
		return nil, nil, nil, err
	}
	xs = append([]float64(nil), x...)
	ys = append([]float64(nil), y...)
	return xs, ys, ts, nil
}
