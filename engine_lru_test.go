package lirs_test

import (
	"testing"

	lirs "github.com/sjiang/lirssim"
	"github.com/sjiang/lirssim/internal/baseline"
)

// TestHitRateAtLeastLRU checks the "LRU lower bound" sanity law: over a
// working set that fits the cache only partway, LIRS must never do
// worse than plain LRU, since LIRS degrades to LRU-like behavior in the
// absence of scans and only adds protection against them.
func TestHitRateAtLeastLRU(t *testing.T) {
	const n = 50
	trace := pseudoRandomLRUTrace(n, 4000, 42)

	for _, capacity := range []int{5, 10, 25} {
		engine, err := lirs.New(n, capacity, lirs.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		lru, err := baseline.NewLRU(capacity, 0)
		if err != nil {
			t.Fatal(err)
		}

		for _, ref := range trace {
			if _, err := engine.Access(ref); err != nil {
				t.Fatal(err)
			}
			lru.Access(ref)
		}

		lirsRate, lruRate := engine.HitRate(), lru.HitRate()
		if lirsRate < lruRate-0.01 {
			t.Errorf("capacity %d: LIRS hit rate %.2f%% fell below LRU's %.2f%%", capacity, lirsRate, lruRate)
		}
	}
}

func pseudoRandomLRUTrace(universe, length int, seed uint64) []int {
	state := seed*2654435761 + 1
	trace := make([]int, length)
	for i := range trace {
		state = state*6364136223846793005 + 1442695040888963407
		trace[i] = int((state >> 33) % uint64(universe))
	}
	return trace
}
