package testutil

import (
	"context"
	"sync"

	"github.com/gazetools/gazeseg"
)

// MockNSLRBackend is a mock implementation of gazeseg.NSLRBackend for
// testing.
type MockNSLRBackend struct {
	ClassifyGazeFunc func(ctx context.Context, times []float64, points []gazeseg.Point, opts gazeseg.NSLRBackendOptions) ([]int, []gazeseg.IndexSegment, []int, error)

	mu         sync.Mutex
	CallCount  int
	LastTimes  []float64
	LastPoints []gazeseg.Point
	LastOpts   gazeseg.NSLRBackendOptions
}

func (m *MockNSLRBackend) ClassifyGaze(ctx context.Context, times []float64, points []gazeseg.Point, opts gazeseg.NSLRBackendOptions) ([]int, []gazeseg.IndexSegment, []int, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastTimes = times
	m.LastPoints = points
	m.LastOpts = opts
	m.mu.Unlock()

	if m.ClassifyGazeFunc != nil {
		return m.ClassifyGazeFunc(ctx, times, points, opts)
	}

	// Default: one fixation segment covering the whole trace.
	if len(points) == 0 {
		return []int{}, []gazeseg.IndexSegment{}, []int{}, nil
	}
	sampleClasses := make([]int, len(points))
	for i := range sampleClasses {
		sampleClasses[i] = gazeseg.NSLRFixation
	}
	segments := []gazeseg.IndexSegment{
		{StartIndex: 0, StartTime: times[0], EndTime: times[len(times)-1]},
	}
	return sampleClasses, segments, []int{gazeseg.NSLRFixation}, nil
}

// MockRemodnavFactory is a mock implementation of
// gazeseg.RemodnavFactory for testing.
type MockRemodnavFactory struct {
	NewFunc func(px2deg, samplingRate float64, opts gazeseg.RemodnavClassifierOptions) (gazeseg.RemodnavClassifier, error)

	// Classifier is returned by New when NewFunc is nil. If also nil,
	// a zero MockRemodnavClassifier is returned.
	Classifier *MockRemodnavClassifier

	mu         sync.Mutex
	CallCount  int
	LastPx2Deg float64
	LastRate   float64
	LastOpts   gazeseg.RemodnavClassifierOptions
}

func (m *MockRemodnavFactory) New(px2deg, samplingRate float64, opts gazeseg.RemodnavClassifierOptions) (gazeseg.RemodnavClassifier, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastPx2Deg = px2deg
	m.LastRate = samplingRate
	m.LastOpts = opts
	m.mu.Unlock()

	if m.NewFunc != nil {
		return m.NewFunc(px2deg, samplingRate, opts)
	}
	if m.Classifier != nil {
		return m.Classifier, nil
	}
	return &MockRemodnavClassifier{}, nil
}

// MockRemodnavClassifier is a mock implementation of
// gazeseg.RemodnavClassifier for testing.
type MockRemodnavClassifier struct {
	PreprocessFunc func(ctx context.Context, data []gazeseg.Point, opts gazeseg.RemodnavPreprocessOptions) ([]gazeseg.Point, error)
	RunFunc        func(ctx context.Context, data []gazeseg.Point, opts gazeseg.RemodnavProcessOptions) ([]gazeseg.IntervalEvent, error)

	mu              sync.Mutex
	PreprocessCount int
	RunCount        int
	LastPreprocess  gazeseg.RemodnavPreprocessOptions
	LastProcess     gazeseg.RemodnavProcessOptions
}

func (m *MockRemodnavClassifier) Preprocess(ctx context.Context, data []gazeseg.Point, opts gazeseg.RemodnavPreprocessOptions) ([]gazeseg.Point, error) {
	m.mu.Lock()
	m.PreprocessCount++
	m.LastPreprocess = opts
	m.mu.Unlock()

	if m.PreprocessFunc != nil {
		return m.PreprocessFunc(ctx, data, opts)
	}
	return data, nil
}

func (m *MockRemodnavClassifier) Run(ctx context.Context, data []gazeseg.Point, opts gazeseg.RemodnavProcessOptions) ([]gazeseg.IntervalEvent, error) {
	m.mu.Lock()
	m.RunCount++
	m.LastProcess = opts
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, data, opts)
	}

	// Default: one fixation event on the local time origin.
	return []gazeseg.IntervalEvent{
		{StartTime: 0, EndTime: 0.1, Label: "FIXA"},
	}, nil
}
