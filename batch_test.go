package gazeseg_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gazetools/gazeseg"
	"github.com/gazetools/gazeseg/testutil"
)

func TestClassifyNSLRBatch(t *testing.T) {
	backend := &testutil.MockNSLRBackend{}
	clf := newTestClassifier(backend, nil)

	traces := []gazeseg.Trace{
		{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}, Times: gazeseg.SamplingRate(100)},
		{X: []float64{3, 4, 5, 6}, Y: []float64{3, 4, 5, 6}, Times: gazeseg.SamplingRate(100)},
		{X: []float64{7, 8}, Y: []float64{7, 8}, Times: gazeseg.TimeVector([]float64{0, 0.01})},
	}

	results, err := clf.ClassifyNSLRBatch(context.Background(), traces, gazeseg.NSLROptions{})
	if err != nil {
		t.Fatalf("ClassifyNSLRBatch failed: %v", err)
	}

	if len(results) != len(traces) {
		t.Fatalf("got %d results, want %d", len(results), len(traces))
	}
	for i, res := range results {
		if res == nil {
			t.Fatalf("result %d is nil", i)
		}
		if len(res.Labels) != len(traces[i].X) {
			t.Errorf("result %d has %d labels, want %d", i, len(res.Labels), len(traces[i].X))
		}
		for j, label := range res.Labels {
			if label != gazeseg.LabelFixation {
				t.Errorf("result %d label %d = %q, want Fixation", i, j, label)
			}
		}
	}
	if backend.CallCount != len(traces) {
		t.Errorf("backend called %d times, want %d", backend.CallCount, len(traces))
	}
}

func TestClassifyNSLRBatch_ErrorNamesTrace(t *testing.T) {
	clf := newTestClassifier(&testutil.MockNSLRBackend{}, nil)

	traces := []gazeseg.Trace{
		{X: []float64{0, 1}, Y: []float64{0, 1}, Times: gazeseg.SamplingRate(100)},
		{X: []float64{0, 1}, Y: []float64{0}, Times: gazeseg.SamplingRate(100)}, // mismatched lengths
	}

	_, err := clf.ClassifyNSLRBatch(context.Background(), traces, gazeseg.NSLROptions{})
	if err == nil || !strings.Contains(err.Error(), "trace 1") {
		t.Fatalf("expected error naming trace 1, got %v", err)
	}
}

func TestClassifyRemodnavBatch(t *testing.T) {
	factory := &testutil.MockRemodnavFactory{}
	clf := newTestClassifier(nil, factory)

	traces := []gazeseg.Trace{
		{X: make([]float64, 20), Y: make([]float64, 20), Times: gazeseg.SamplingRate(1000)},
		{X: make([]float64, 30), Y: make([]float64, 30), Times: gazeseg.SamplingRate(1000)},
	}

	results, err := clf.ClassifyRemodnavBatch(context.Background(), traces, 1.0, gazeseg.RemodnavOptions{ReturnDiscrete: true})
	if err != nil {
		t.Fatalf("ClassifyRemodnavBatch failed: %v", err)
	}

	if len(results) != len(traces) {
		t.Fatalf("got %d results, want %d", len(results), len(traces))
	}
	for i, res := range results {
		if !res.Discrete {
			t.Errorf("result %d is not discrete", i)
		}
		if len(res.Labels) != 1 || res.Labels[0] != gazeseg.LabelFixation {
			t.Errorf("result %d labels = %v", i, res.Labels)
		}
	}
	if factory.CallCount != len(traces) {
		t.Errorf("factory called %d times, want %d", factory.CallCount, len(traces))
	}
}
