// Package driver owns the per-cache-size replay loop: for every
// configured cache size it builds a fresh engine, replays the trace
// through it, and collects the aggregate results the CLI writes out.
package driver

import (
	"github.com/sirupsen/logrus"

	"github.com/sjiang/lirssim/internal/report"
	"github.com/sjiang/lirssim/internal/tracefile"

	lirs "github.com/sjiang/lirssim"
)

// MinReportedCacheSize is the floor below which a configured cache size
// is rejected with a warning and the remainder of the parameter file is
// skipped, per the parameter-input contract.
const MinReportedCacheSize = 10

// Options configures a Run.
type Options struct {
	Config lirs.Config
	Log    *logrus.Logger
}

// Result is everything a Run produced.
type Result struct {
	Curve   []report.CurvePoint
	Samples []report.Sample
}

// Run replays trace once per size in sizes, in order, stopping early
// (with a warning) at the first size below [MinReportedCacheSize]. Only
// the last processed size's stack-occupancy samples are retained,
// matching the reference implementation's ".sln holds only the last
// size" behavior.
func Run(trace *tracefile.Trace, sizes []int, opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	result := &Result{}
	for _, size := range sizes {
		if size < MinReportedCacheSize {
			log.Warnf("cache size %d is too small (<%d); skipping remaining sizes", size, MinReportedCacheSize)
			break
		}

		var samples []report.Sample
		cfg := opts.Config
		cfg.OnSample = func(totalRefs uint64, occupancy float64) {
			samples = append(samples, report.Sample{TotalRefs: totalRefs, Occupancy: occupancy})
		}
		engine, err := lirs.New(trace.N, size, cfg)
		if err != nil {
			return nil, err
		}

		log.Infof("mem_size = %d, hir_cap = %d", size, engine.HIRCap())
		for _, ref := range trace.Refs {
			if _, err := engine.Access(ref); err != nil {
				return nil, err
			}
		}

		stats := engine.Stats()
		log.Infof(
			"total refs = %d, misses = %d, hit rate = %.1f%%",
			stats.TotalRefs, stats.Misses, engine.HitRate(),
		)

		result.Curve = append(result.Curve, report.CurvePoint{
			CacheSize: size,
			HitRate:   engine.HitRate(),
		})
		result.Samples = samples
	}
	return result, nil
}
