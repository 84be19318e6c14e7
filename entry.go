package mtree

// entry is a TreeObject: a record living inside exactly one node at any
// instant. A leaf node holds entries with isRouting == false (leaf
// entries, carrying user data); an internal node holds entries with
// isRouting == true (routing entries, carrying subtree-pointing
// metadata). The two shapes are kept as one struct rather than two types
// behind an interface because a node's entries are homogeneous by
// construction (a node is either all-leaf or all-routing), so the extra
// fields on a leaf entry just sit unused rather than requiring a type
// switch on every access.
//
// distToParent is the distance from repr to the representative of the
// parent routing entry, or 0 when the owning node is the root (the root
// has no parent pivot to measure against).
type entry[T any] struct {
	repr         T
	distToParent float64

	isRouting      bool
	coveringRadius float64
	subtree        *node[T]

	hasCachedQuery bool
	cachedQuery    T
	cachedDist     float64
}

func newLeafEntry[T any](repr T, distToParent float64) *entry[T] {
	return &entry[T]{repr: repr, distToParent: distToParent}
}

func newRoutingEntry[T any](repr T, coveringRadius float64, distToParent float64, subtree *node[T]) *entry[T] {
	return &entry[T]{
		repr:           repr,
		distToParent:   distToParent,
		isRouting:      true,
		coveringRadius: coveringRadius,
		subtree:        subtree,
	}
}

// distanceToQuery memoizes d(query, e.repr) across the multiple pruning
// tests performed along different descent paths during a single KNN call.
// The cache is per-query and is never invalidated by Insert, because
// search never mutates the tree; it is safe only because a single MTree
// must not run concurrent KNN calls (see package doc).
func (e *entry[T]) distanceToQuery(query T, metric Metric[T]) float64 {
	if e.hasCachedQuery && objectsEqual(query, e.cachedQuery) {
		return e.cachedDist
	}
	d := metric.Distance(query, e.repr)
	e.cachedQuery = query
	e.cachedDist = d
	e.hasCachedQuery = true
	return d
}
