// SPDX-License-Identifier: MIT

// Package frontier implements the indexed min-priority queue that drives the
// safepath shortest-path search.
//
// Every queued vertex ID owns exactly one heap slot, tracked by an index map, so
// priorities can be lowered in place (DecreaseKey) or entries removed without
// the lazy-deletion duplicates a plain container/heap queue accumulates.
//
// Operations:
//
//	Push(id, p)           // O(log n): insert, or reprioritise an existing id
//	DecreaseKey(id, p)    // O(log n): lower the priority of a queued id
//	Pop()                 // O(log n): extract min; ok=false when empty
//	Peek()                // O(1)
//	Remove(id)            // O(log n)
//	Contains, Priority    // O(1)
//
// Ties are broken by insertion sequence, which keeps extraction order
// deterministic for equal priorities.
//
// A Frontier is not safe for concurrent use; each query owns its own.
package frontier
