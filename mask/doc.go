// Package mask evaluates resolved predicates into per-table row masks
// and applies them to the dataset.
//
// Masks are roaring bitmaps starting all-true; every predicate narrows
// conjunctively (range bounds inclusive on both ends, membership by set
// lookup). Applying the masks is the single externally observable side
// effect of a filter invocation: both tables and the shared matrix shrink
// together, preserving row order and alignment.
package mask
