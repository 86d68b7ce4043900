// Package idalloc hands out the sequential record identifiers of an import run.
package idalloc

// DefaultFirstID is the first identifier handed out by a fresh run.
const DefaultFirstID = 100

// Allocator is a monotonically increasing counter owned by a single import run.
// It is not safe for concurrent use; the transform is single-threaded.
type Allocator struct {
	next  int
	first int
}

// New creates an Allocator whose first Next call returns first.
func New(first int) *Allocator {
	return &Allocator{next: first, first: first}
}

// Next returns the current value and advances the counter by one.
func (a *Allocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Peek returns the value the next call to Next will return.
func (a *Allocator) Peek() int { return a.next }

// Allocated returns how many identifiers have been handed out.
func (a *Allocator) Allocated() int { return a.next - a.first }
