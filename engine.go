package lirs

import (
	"math"

	"github.com/sjiang/lirssim/internal/dlist"
)

// noBlock is the sentinel index meaning "no block" — used for lastRef
// before any reference has been made, and for lirBottom when no LIR
// block exists yet.
const noBlock = -1

// MinimumCapacity is the lowest cache size accepted by [New]. The
// trace-level CLI applies its own, stricter ">=10" rule (see the driver
// package). Independently of this floor, New rejects any capacity whose
// hirCap leaves no room for at least one LIR block.
const MinimumCapacity = 1

// Default tunables, matching the constants named in the design notes
// ("Tunables (constants, documented at module level)").
const (
	// DefaultHIRRatePercent is the percentage of capacity reserved
	// for resident HIR blocks (queue Q).
	DefaultHIRRatePercent = 1.0
	// DefaultMinHIR is the floor on hirCap regardless of HIRRatePercent.
	DefaultMinHIR = 2
	// DefaultMaxSLen of 0 means stack S is unbounded (only the lazy
	// bottom-pruning in refreshLirBottom applies).
	DefaultMaxSLen = 0
	// DefaultStatStart means every reference counts toward the
	// warm/miss statistics from the very first one.
	DefaultStatStart = 0
)

// Kind is a block's current classification.
type Kind uint8

const (
	// HIR is the zero value so a freshly zeroed block starts out HIR,
	// matching the replacement policy's treatment of unseen blocks.
	HIR Kind = iota
	LIR
)

func (k Kind) String() string {
	if k == LIR {
		return "LIR"
	}
	return "HIR"
}

// Result reports whether an [Engine.Access] call hit or missed the cache.
type Result uint8

const (
	Miss Result = iota
	Hit
)

func (r Result) String() string {
	if r == Hit {
		return "hit"
	}
	return "miss"
}

// block holds the per-block state the replacement engine mutates on
// every access. It never moves in memory after the Engine is built, so
// sLink/qLink can be safely addressed by index from [dlist.List].
type block struct {
	resident bool
	kind     Kind
	inS      bool
	sLink    dlist.Node
	qLink    dlist.Node
}

// Config holds the tunables governing an [Engine]'s behavior. The zero
// value is not directly usable; start from [DefaultConfig].
type Config struct {
	// HIRRatePercent is the percentage (not fraction) of capacity
	// reserved for queue Q.
	HIRRatePercent float64
	// MinHIR floors hirCap regardless of HIRRatePercent.
	MinHIR int
	// MaxSLen bounds stack S; 0 means unbounded.
	MaxSLen int
	// StatStart is the number of leading references excluded from
	// warmRefs/misses (warmup neutrality).
	StatStart uint64
	// OnSample, if non-nil, is invoked after every access for which
	// sLen > capacity, reporting (totalRefs, sLen/capacity).
	OnSample func(totalRefs uint64, occupancy float64)
}

// DefaultConfig returns the tunables used by the original LIRS reference
// implementation.
func DefaultConfig() Config {
	return Config{
		HIRRatePercent: DefaultHIRRatePercent,
		MinHIR:         DefaultMinHIR,
		MaxSLen:        DefaultMaxSLen,
		StatStart:      DefaultStatStart,
	}
}

// Engine is one LIRS replacement simulation over a fixed universe of N
// blocks and a fixed cache capacity. It owns all of its state; running
// several cache sizes means constructing several Engines, one apiece —
// there is no shared global state, and an Engine must not be accessed
// concurrently from more than one goroutine.
type Engine struct {
	blocks []block
	stackS *dlist.List
	queueQ *dlist.List

	lirBottom int
	lastRef   int

	capacity, free, hirCap, lirCount, sLen, maxSLen int

	totalRefs, warmRefs, misses, statStart uint64

	onSample func(totalRefs uint64, occupancy float64)
}

// New creates an Engine over a universe of n distinct blocks (ids
// 0..n-1) with the given cache capacity and tunables.
func New(n, capacity int, cfg Config) (*Engine, error) {
	if capacity < MinimumCapacity {
		return nil, invalidCapacityError(capacity)
	}
	hirCap := int(math.Ceil(cfg.HIRRatePercent / 100.0 * float64(capacity)))
	if hirCap < cfg.MinHIR {
		hirCap = cfg.MinHIR
	}
	if hirCap < 1 || hirCap >= capacity {
		return nil, hirCapacityError(capacity, hirCap)
	}
	e := &Engine{
		blocks:    make([]block, n),
		lirBottom: noBlock,
		lastRef:   noBlock,
		capacity:  capacity,
		free:      capacity,
		hirCap:    hirCap,
		maxSLen:   cfg.MaxSLen,
		statStart: cfg.StatStart,
		onSample:  cfg.OnSample,
	}
	e.stackS = dlist.New(e.sLinks)
	e.queueQ = dlist.New(e.qLinks)
	return e, nil
}

func (e *Engine) sLinks(i int) *dlist.Node { return &e.blocks[i].sLink }
func (e *Engine) qLinks(i int) *dlist.Node { return &e.blocks[i].qLink }

// Access processes one reference to blockID, mutating stack S, queue Q,
// the lirBottom cursor and the running counters, then returns whether
// the reference hit or missed.
func (e *Engine) Access(blockID int) (Result, error) {
	if blockID < 0 || blockID >= len(e.blocks) {
		return Miss, inputFormatError(blockID, len(e.blocks))
	}
	e.totalRefs++
	warm := e.totalRefs > e.statStart
	if warm {
		e.warmRefs++
	}

	if blockID == e.lastRef {
		// Duplicate suppression: the block must already be resident
		// from the previous access, so this is a no-op hit.
		return Hit, nil
	}
	e.lastRef = blockID

	b := &e.blocks[blockID]
	wasInS := b.inS
	wasHIRInS := b.kind == HIR && wasInS
	oldLIRBottom := e.lirBottom

	result := Hit
	if !b.resident {
		result = Miss
		if warm {
			e.misses++
		}
		assignLIR, err := e.makeRoom()
		if err != nil {
			return Miss, err
		}
		if assignLIR {
			b.kind = LIR
			e.lirCount++
		}
	} else if b.kind == HIR {
		e.queueQ.Remove(blockID)
	}

	if wasInS {
		e.stackS.Remove(blockID)
	}
	e.stackS.PushHead(blockID)
	b.resident = true
	b.inS = true
	if !wasInS {
		e.sLen++
	}

	promoted := false
	if wasHIRInS && oldLIRBottom != noBlock {
		b.kind = LIR
		e.lirCount++

		old := &e.blocks[oldLIRBottom]
		if debugging {
			assert(old.inS && old.kind == LIR, "lirBottom is not a resident, in-S LIR block")
		}
		e.stackS.Remove(oldLIRBottom)
		old.inS = false
		old.kind = HIR
		e.sLen--
		e.queueQ.PushHead(oldLIRBottom)
		e.lirCount--

		promoted = true
	}
	if !promoted && b.kind == HIR {
		e.queueQ.PushHead(blockID)
	}

	e.refreshLirBottom()
	e.pruneS()

	if e.onSample != nil && e.sLen > e.capacity {
		e.onSample(e.totalRefs, float64(e.sLen)/float64(e.capacity))
	}

	return result, nil
}

// makeRoom implements step (b).2 of the miss path: it evicts from Q if
// the cache is full, and reports whether the incoming block should be
// admitted as LIR (when there is still room to grow the LIR set).
func (e *Engine) makeRoom() (assignLIR bool, err error) {
	switch {
	case e.free == 0:
		victim := e.queueQ.PopTail()
		if victim == dlist.Nil {
			return false, invariantViolatedError("eviction requested with an empty queue Q")
		}
		e.blocks[victim].resident = false
		e.free++
	case e.free > e.hirCap:
		// Still filling the cache's LIR capacity; by construction
		// lirCount cannot exceed capacity-hirCap here, since this
		// branch only runs while more than hirCap frames are free.
		if debugging {
			assert(e.lirCount < e.capacity-e.hirCap, "LIR admission would exceed capacity-hirCap")
		}
		assignLIR = true
	}
	e.free--
	return assignLIR, nil
}

// refreshLirBottom maintains the invariant that lirBottom is the
// deepest LIR entry in S, pruning any HIR entries found below it (an
// HIR block below the bottom LIR carries no information LIRS needs).
func (e *Engine) refreshLirBottom() {
	cur := e.stackS.Tail()
	for cur != dlist.Nil {
		b := &e.blocks[cur]
		if b.kind == LIR {
			e.lirBottom = cur
			return
		}
		prev := e.stackS.Prev(cur)
		e.stackS.Remove(cur)
		b.inS = false
		e.sLen--
		cur = prev
	}
	e.lirBottom = noBlock
}

// pruneS bounds stack S to maxSLen (when configured) by trimming the
// oldest HIR entry retained above lirBottom. Entries below lirBottom
// are never present at this point: refreshLirBottom already removed
// them. This is a safety net only exercised by workloads with a finite
// MaxSLen; most runs leave it unbounded.
func (e *Engine) pruneS() {
	if e.maxSLen <= 0 || e.sLen <= e.maxSLen || e.lirBottom == noBlock {
		return
	}
	cur := e.stackS.Prev(e.lirBottom)
	for cur != dlist.Nil {
		b := &e.blocks[cur]
		if b.kind == HIR {
			e.stackS.Remove(cur)
			b.inS = false
			e.sLen--
			return
		}
		cur = e.stackS.Prev(cur)
	}
}

// Stats is a snapshot of an Engine's running counters.
type Stats struct {
	TotalRefs, WarmRefs, Misses uint64
	LIRCount, QLen, SLen, Free  int
}

// Stats returns a snapshot of the engine's current counters.
func (e *Engine) Stats() Stats {
	return Stats{
		TotalRefs: e.totalRefs,
		WarmRefs:  e.warmRefs,
		Misses:    e.misses,
		LIRCount:  e.lirCount,
		QLen:      e.queueQ.Len(),
		SLen:      e.sLen,
		Free:      e.free,
	}
}

// HitRate returns the warm hit rate as a percentage, or 0 if no warm
// references have been processed yet.
func (e *Engine) HitRate() float64 {
	if e.warmRefs == 0 {
		return 0
	}
	return 100 - float64(e.misses)*100/float64(e.warmRefs)
}

// Capacity returns the engine's configured cache size.
func (e *Engine) Capacity() int { return e.capacity }

// HIRCap returns the maximum number of resident HIR blocks (queue Q's bound).
func (e *Engine) HIRCap() int { return e.hirCap }
