// Package partition plans how an input sequence is split across workers.
//
// A plan for n elements and w workers contains exactly w contiguous half-open
// ranges in worker order. Every range except the last holds floor(n/w)
// elements; the last range also absorbs the n mod w remainder elements, so
// the union of a plan is always [0, n) with no gaps and no overlaps.
//
// Example plans:
//
//	Plan(8, 4)  → [0,2) [2,4) [4,6) [6,8)
//	Plan(10, 4) → [0,2) [2,4) [4,6) [6,10)
//	Plan(3, 4)  → [0,0) [0,0) [0,0) [0,3)
//	Plan(0, 4)  → [0,0) [0,0) [0,0) [0,0)
package partition
