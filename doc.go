// Package lirs implements the LIRS (Low Inter-reference Recency Set)
// cache replacement algorithm, as introduced by Jiang and Zhang in
// "LIRS: An Efficient Low Inter-reference Recency Set Replacement Policy
// to Improve Buffer Cache Performance" (SIGMETRICS '02).
//
// LIRS classifies cached blocks by their inter-reference recency (IRR) —
// the number of distinct blocks referenced between two successive
// references to the same block — rather than by recency alone, which
// makes it resistant to the sequential-scan and looping-access patterns
// that defeat plain LRU.
//
// Glossary and invariants:
//
//   - LIR block
//
//     Low Inter-Reference Recency. Kept resident and protected from
//     eviction; at most capacity-hirCap of these exist at a time.
//
//   - HIR block
//
//     High Inter-Reference Recency. May be resident (held in queue Q,
//     eviction candidate) or non-resident (a "test"/ghost entry retained
//     only as metadata in stack S to detect a resumed short reuse
//     distance).
//
//   - Stack S
//
//     The recency-ordered list retaining history for LIR blocks and
//     recently seen HIR blocks. Its bottom is always an LIR block; an
//     HIR entry below the bottom carries no information LIRS needs, so
//     it is pruned away as soon as it would occupy that position.
//
//   - Queue Q
//
//     The resident-HIR LRU list. Its tail is the next eviction victim.
//
//   - lirBottom
//
//     The deepest LIR entry in S; the demotion pivot when a new block
//     is promoted to LIR.
//
//   - Resident
//
//     Occupying one of capacity cache frames.
//
//   - In-S
//
//     Has metadata in stack S, regardless of residency.
//
// Operations:
//
//   - Promotion
//
//     When a reference hits a block that is HIR and already has an
//     entry in S (its IRR was small enough that it never fell out of
//     stack history), it is promoted to LIR and the current lirBottom
//     is demoted to HIR and pushed onto Q.
//
//   - Demotion
//
//     The converse of promotion: the previous lirBottom becomes a
//     resident HIR block, in Q, no longer in S.
//
//   - Pruning
//
//     Stack S is kept bounded in two independent ways: lazily, any HIR
//     entry found below lirBottom is dropped (§4.3 in the design doc,
//     [refreshLirBottom]); and, only if a finite MaxSLen tunable is
//     configured, the oldest HIR entry retained above lirBottom is
//     trimmed once per access when sLen exceeds that bound ([pruneS]).
//
// [2002 SIGMETRICS LIRS paper]: https://dl.acm.org/doi/10.1145/511399.511340
package lirs
