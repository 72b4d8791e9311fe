// Package baseline provides a reference LRU cache used only by tests, to
// check the "LIRS hit rate is at least LRU's" sanity law against a
// trusted, independently implemented policy rather than a hand-rolled
// one.
package baseline

import lru "github.com/hashicorp/golang-lru/v2"

// LRU replays a trace against a plain least-recently-used policy and
// reports its warm hit rate, mirroring the subset of lirs.Engine's
// counters needed for the cross-check.
type LRU struct {
	cache     *lru.Cache[int, struct{}]
	statStart uint64
	totalRefs uint64
	warmRefs  uint64
	misses    uint64
}

// NewLRU constructs a reference LRU simulator of the given capacity.
func NewLRU(capacity int, statStart uint64) (*LRU, error) {
	cache, err := lru.New[int, struct{}](capacity)
	if err != nil {
		return nil, err
	}
	return &LRU{cache: cache, statStart: statStart}, nil
}

// Access records one reference to blockID and reports whether it hit.
func (l *LRU) Access(blockID int) bool {
	l.totalRefs++
	warm := l.totalRefs > l.statStart
	if warm {
		l.warmRefs++
	}
	if _, hit := l.cache.Get(blockID); hit {
		return true
	}
	if warm {
		l.misses++
	}
	l.cache.Add(blockID, struct{}{})
	return false
}

// HitRate returns the warm hit rate as a percentage.
func (l *LRU) HitRate() float64 {
	if l.warmRefs == 0 {
		return 0
	}
	return 100 - float64(l.misses)*100/float64(l.warmRefs)
}
