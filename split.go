package mtree

// split implements the node split protocol: promote two pivots out of
// entries ∪ {newEntry}, partition the rest between them,
// adopt the resulting subtrees, and install the two new routing entries
// into the parent (creating a new root if n was the root). It returns
// the node that must become the tree's new root, or nil if the root's
// identity did not change.
func (n *node[T]) split(newEntry *entry[T], metric Metric[T], a *arena[T], promote promoter[T]) *node[T] {
	all := make([]*entry[T], 0, len(n.entries)+1)
	all = append(all, n.entries...)
	all = append(all, newEntry)

	i, j := promote.choosePivots(all)
	p1Repr, p2Repr := all[i].repr, all[j].repr

	mid := (len(all) + 1) / 2 // ceil((N+1)/2)
	// s1's capacity is capped so a later append to n.entries cannot
	// overwrite sibling's first entry in the shared backing array.
	s1, s2 := all[:mid:mid], all[mid:]

	sibling := a.newNode(n.capacity, n.isLeaf, false, n.parent, nil)

	n.entries = s1
	sibling.entries = s2

	p1 := adopt(p1Repr, s1, n, metric)
	p2 := adopt(p2Repr, s2, sibling, metric)

	n.reindexChildren()
	sibling.reindexChildren()

	if n.isRoot {
		return n.installNewRoot(sibling, p1, p2, a, metric)
	}
	return n.installIntoParent(sibling, p1, p2, a, metric, promote)
}

// adopt builds the routing entry for a promoted pivot: its covering
// radius is the tightest bound covering every member of its partition,
// and every member gets its distanceToParent set relative to the new
// pivot.
func adopt[T any](repr T, members []*entry[T], subtree *node[T], metric Metric[T]) *entry[T] {
	maxDist := 0.0
	for _, e := range members {
		d := metric.Distance(repr, e.repr)
		if bound := d + childRadius(e); bound > maxDist {
			maxDist = bound
		}
		e.distToParent = d
	}
	return newRoutingEntry(repr, maxDist, 0, subtree)
}

func childRadius[T any](e *entry[T]) float64 {
	if e.isRouting {
		return e.coveringRadius
	}
	return 0
}

// installNewRoot handles the "old node is root" case: a fresh internal
// root is allocated holding {p1, p2}; the old root (n) becomes a
// non-root child of p1, and the freshly created sibling becomes the
// child of p2.
func (n *node[T]) installNewRoot(sibling *node[T], p1, p2 *entry[T], a *arena[T], metric Metric[T]) *node[T] {
	root := a.newNode(n.capacity, false, true, nil, nil)

	n.isRoot = false
	n.parent = root
	n.parentEntry = p1
	p1.subtree = n

	sibling.parent = root
	sibling.parentEntry = p2
	p2.subtree = sibling

	root.entries = []*entry[T]{p1, p2}
	p1.distToParent = 0
	p2.distToParent = 0
	return root
}

// installIntoParent handles the "old node is non-root" case: p1 replaces
// n's old parent-routing entry in place, then p2 is inserted into the
// same parent, recursing the split upward if the parent overflows.
func (n *node[T]) installIntoParent(sibling *node[T], p1, p2 *entry[T], a *arena[T], metric Metric[T], promote promoter[T]) *node[T] {
	parent := n.parent
	replaceEntry(parent, n.parentEntry, p1)
	n.parentEntry = p1
	p1.subtree = n

	sibling.parent = parent
	sibling.parentEntry = p2
	p2.subtree = sibling

	if len(parent.entries) < parent.capacity {
		parent.entries = append(parent.entries, p2)
		recomputeDistToParent(p1, parent, metric)
		recomputeDistToParent(p2, parent, metric)
		return nil
	}

	// Parent overflows: recurse the split using p2 as the new entry. The
	// recursive split calls reindexChildren on both nodes it leaves
	// behind, which is what repairs sibling's back-link to
	// point at whichever node p2 ends up resident in.
	recomputeDistToParent(p1, parent, metric)
	return parent.split(p2, metric, a, promote)
}

// replaceEntry swaps old for replacement in node's entry sequence,
// preserving position.
func replaceEntry[T any](n *node[T], old, replacement *entry[T]) {
	for idx, e := range n.entries {
		if e == old {
			n.entries[idx] = replacement
			return
		}
	}
}

// recomputeDistToParent sets e.distToParent to the distance from e's
// representative to the representative of owner's own parent pivot, or
// 0 when owner is the root, applied after e is installed into owner.
func recomputeDistToParent[T any](e *entry[T], owner *node[T], metric Metric[T]) {
	if owner.isRoot || owner.parentEntry == nil {
		e.distToParent = 0
		return
	}
	e.distToParent = metric.Distance(e.repr, owner.parentEntry.repr)
}
