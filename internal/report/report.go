// Package report writes the two output files a LIRS simulation run
// produces: the hit-rate-vs-size curve (.cuv) and the last cache size's
// stack-occupancy samples (.sln).
package report

import (
	"bufio"
	"fmt"
	"io"
)

// CurvePoint is one line of the .cuv file: a cache size and the warm
// hit rate LIRS achieved at that size.
type CurvePoint struct {
	CacheSize int
	HitRate   float64
}

// Sample is one line of the .sln file: a reference index and the stack
// S occupancy ratio (sLen/capacity) observed at that point.
type Sample struct {
	TotalRefs uint64
	Occupancy float64
}

// WriteCurve writes one "<cache_size> <hit_rate_percent>" line per
// point, hit rate to one decimal place.
func WriteCurve(w io.Writer, points []CurvePoint) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%5d  %2.1f\n", p.CacheSize, p.HitRate); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSamples writes one "<total_refs> <s_len/capacity>" line per
// sample, occupancy to two decimal places.
func WriteSamples(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := fmt.Fprintf(bw, "%4d %2.2f\n", s.TotalRefs, s.Occupancy); err != nil {
			return err
		}
	}
	return bw.Flush()
}
