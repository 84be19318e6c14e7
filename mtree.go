package mtree

// noCopy may be added to structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
//
// MTree embeds one because its root pointer, arena counters, and promoter
// state are only valid for the original value; copying an MTree by value
// would alias the same tree through two independent handles while letting
// each accumulate its own (wrong) height and size bookkeeping.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// MTree is a dynamic, balanced metric-space index over objects of type T,
// implementing the insertion, split, and best-first kNN search protocol
// described in the package doc. It is safe for concurrent Insert calls to
// run alongside each other only if the caller supplies external
// synchronization; see the package doc for the concurrency model.
type MTree[T any] struct {
	_ noCopy

	capacity int
	metric   Metric[T]
	promote  promoter[T]

	arena arena[T]
	root  *node[T]

	size   int
	height int

	lastNodesAccessed int64
}

// Option configures an MTree at construction time.
type Option[T any] func(*MTree[T])

// WithPromoter overrides the default random promotion policy, e.g. with a
// deterministic one for tests that assert exact split shapes.
func WithPromoter[T any](p promoter[T]) Option[T] {
	return func(t *MTree[T]) { t.promote = p }
}

// New constructs an empty MTree with the given node capacity and distance
// metric. It panics if capacity is less than 2, since a node cannot
// usefully split into two non-empty halves otherwise.
func New[T any](capacity int, metric Metric[T], opts ...Option[T]) *MTree[T] {
	if capacity < 2 {
		panic("mtree: capacity must be at least 2")
	}
	if metric == nil {
		panic("mtree: metric must not be nil")
	}

	t := &MTree[T]{
		capacity: capacity,
		metric:   metric,
		promote:  newRandomPromoter[T](nil),
		height:   1,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.arena.newNode(capacity, true, true, nil, nil)
	return t
}

// Insert adds element to the tree, splitting and re-anchoring the root as
// needed. The tree's height increases by exactly one each time a split
// propagates all the way to the root.
func (t *MTree[T]) Insert(element T) {
	if newRoot := t.root.insert(element, t.metric, &t.arena, t.promote); newRoot != nil {
		t.root = newRoot
		t.height++
	}
	t.size++
}

// KNN returns the k objects closest to query under the tree's metric, in
// ascending distance order. It runs a best-first search driver: a
// candidate set seeded with the root, repeatedly expanding whichever
// pending node currently has the smallest lower-bound distance to query,
// until no candidate can possibly improve on the current k-best.
func (t *MTree[T]) KNN(query T, k int) *NNList[T] {
	t.lastNodesAccessed = 0
	result := NewNNList[T](max(k, 0))
	if k < 1 || t.root.isEmpty() {
		return result
	}

	candidates := []candidate[T]{{node: t.root, lowerBound: 0}}
	for len(candidates) > 0 {
		idx := indexOfMinLowerBound(candidates)
		c := candidates[idx]
		candidates[idx] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		if c.lowerBound > result.MaxDistance() {
			continue
		}

		t.lastNodesAccessed++
		c.node.search(query, result, &candidates, t.metric)
	}
	return result
}

func indexOfMinLowerBound[T any](candidates []candidate[T]) int {
	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].lowerBound < candidates[best].lowerBound {
			best = i
		}
	}
	return best
}

// Size returns the number of objects inserted into the tree.
func (t *MTree[T]) Size() int { return t.size }

// Height returns the number of levels in the tree, counting the root leaf
// of a freshly constructed empty tree as height 1.
func (t *MTree[T]) Height() int { return t.height }

// NodesAccessed returns the number of nodes expanded by the most recent
// KNN call, for comparing search cost against a linear scan.
func (t *MTree[T]) NodesAccessed() int64 { return t.lastNodesAccessed }

// TotalNodes returns the number of nodes ever allocated by the tree.
func (t *MTree[T]) TotalNodes() int64 { return t.arena.totalNodes() }
