package gazeseg_test

import (
	"context"
	"fmt"
	"log"

	"github.com/gazetools/gazeseg"
	"github.com/gazetools/gazeseg/testutil"
)

// Example shows classifying one trace with the index-based backend.
func Example_nslr() {
	// Inject your NSLR-HMM backend; a mock stands in here.
	clf := gazeseg.New(gazeseg.Config{NSLR: &testutil.MockNSLRBackend{}})

	x := []float64{0.1, 0.2, 0.3, 0.4}
	y := []float64{0.0, 0.0, 0.1, 0.1}

	res, err := clf.ClassifyNSLR(context.Background(), x, y, gazeseg.SamplingRate(500), gazeseg.NSLROptions{
		ReturnDiscrete: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	for i := range res.Segments {
		fmt.Printf("%.3fs %s\n", res.Segments[i], res.Labels[i])
	}
}

// Example shows the interval-based backend with the simplified
// vocabulary and per-sample output.
func Example_remodnav() {
	clf := gazeseg.New(gazeseg.Config{Remodnav: &testutil.MockRemodnavFactory{}})

	x := []float64{100, 102, 250, 251}
	y := []float64{80, 81, 80, 80}
	times := []float64{10.0, 10.002, 10.004, 10.006}

	res, err := clf.ClassifyRemodnav(context.Background(), x, y, gazeseg.TimeVector(times), 0.0185, gazeseg.RemodnavOptions{
		Simplified: true,
		ReturnRaw:  true,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Labels: %v\n", res.Labels)
	for _, ev := range res.RawEvents {
		fmt.Printf("%s %.3f-%.3f\n", ev.Label, ev.StartTime, ev.EndTime)
	}
}
