// SPDX-License-Identifier: MIT

package frontier

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrNotQueued is returned by DecreaseKey for an id that is not in the frontier.
	ErrNotQueued = errors.New("frontier: id not queued")

	// ErrPriorityIncrease is returned by DecreaseKey when the new priority is larger.
	ErrPriorityIncrease = errors.New("frontier: new priority is larger than current")
)

// item is one heap slot.
type item struct {
	id       string
	priority float64
	seq      uint64 // insertion order, tie-breaker
	index    int    // position in the heap, -1 once removed
}

// queue implements heap.Interface over item pointers and keeps item.index in sync.
type queue []*item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].priority == q[j].priority {
		return q[i].seq < q[j].seq
	}
	return q[i].priority < q[j].priority
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	it := x.(*item)
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]
	return it
}

// Frontier is an indexed min-heap of vertex IDs keyed by tentative cost.
type Frontier struct {
	q     queue
	items map[string]*item
	seq   uint64
}

// New returns an empty Frontier sized for capacity entries.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}
	return &Frontier{
		q:     make(queue, 0, capacity),
		items: make(map[string]*item, capacity),
	}
}

// Len returns the number of queued entries.
func (f *Frontier) Len() int { return len(f.q) }

// Contains reports whether id is currently queued.
func (f *Frontier) Contains(id string) bool {
	_, ok := f.items[id]
	return ok
}

// Priority returns the current priority of id.
func (f *Frontier) Priority(id string) (float64, bool) {
	it, ok := f.items[id]
	if !ok {
		return 0, false
	}
	return it.priority, true
}

// Push inserts id with the given priority. If id is already queued its
// priority is replaced and the heap repaired in place.
// It reports whether a new entry was created.
func (f *Frontier) Push(id string, priority float64) bool {
	if it, ok := f.items[id]; ok {
		it.priority = priority
		heap.Fix(&f.q, it.index)
		return false
	}
	f.seq++
	it := &item{id: id, priority: priority, seq: f.seq}
	f.items[id] = it
	heap.Push(&f.q, it)
	return true
}

// DecreaseKey lowers the priority of a queued id.
// An equal priority is accepted and leaves the heap untouched.
func (f *Frontier) DecreaseKey(id string, priority float64) error {
	it, ok := f.items[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotQueued, id)
	}
	if priority > it.priority {
		return fmt.Errorf("%w: %q %g > %g", ErrPriorityIncrease, id, priority, it.priority)
	}
	if priority == it.priority {
		return nil
	}
	it.priority = priority
	heap.Fix(&f.q, it.index)
	return nil
}

// Pop extracts the entry with the smallest priority.
// ok is false when the frontier is empty.
func (f *Frontier) Pop() (id string, priority float64, ok bool) {
	if len(f.q) == 0 {
		return "", 0, false
	}
	it := heap.Pop(&f.q).(*item)
	delete(f.items, it.id)
	return it.id, it.priority, true
}

// Peek returns the minimum entry without removing it.
func (f *Frontier) Peek() (id string, priority float64, ok bool) {
	if len(f.q) == 0 {
		return "", 0, false
	}
	return f.q[0].id, f.q[0].priority, true
}

// Remove deletes id from the frontier and reports whether it was queued.
func (f *Frontier) Remove(id string) bool {
	it, ok := f.items[id]
	if !ok {
		return false
	}
	heap.Remove(&f.q, it.index)
	delete(f.items, id)
	return true
}
