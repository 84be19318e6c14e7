package mtree

import "sync/atomic"

// arena is a forward-only allocator for *node[T]. Deletion is out of
// scope for this index, so unlike a recycling pool that hands freed
// objects back out, this allocator only ever hands out fresh nodes and
// never takes one back. It still gives every node a stable, monotonically
// increasing id and tracks the total-nodes counter the MTree facade
// exposes.
type arena[T any] struct {
	totalAllocated atomic.Int64
}

// newNode allocates and returns a fresh node with the next arena id.
func (a *arena[T]) newNode(capacity int, isLeaf, isRoot bool, parent *node[T], parentEntry *entry[T]) *node[T] {
	id := a.totalAllocated.Add(1) - 1
	return &node[T]{
		id:          id,
		capacity:    capacity,
		isLeaf:      isLeaf,
		isRoot:      isRoot,
		parent:      parent,
		parentEntry: parentEntry,
	}
}

// totalNodes returns the number of nodes ever allocated by this arena.
func (a *arena[T]) totalNodes() int64 {
	return a.totalAllocated.Load()
}
