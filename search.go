package mtree

import "math"

// candidate is a (node, lower-bound) pair waiting to be expanded by the
// best-first search driver in mtree.go.
type candidate[T any] struct {
	node       *node[T]
	lowerBound float64
}

// search runs the pruned kNN descent for a single node: it tests each
// entry against the parent-distance bound first
// (which costs no new Metric call), then falls back to an actual
// distance evaluation, inserting leaf hits into nnList and appending
// routing hits to candidates for later expansion.
func (n *node[T]) search(query T, nnList *NNList[T], candidates *[]candidate[T], metric Metric[T]) {
	dqp := n.distanceToParentPivot(query, metric)

	for _, e := range n.entries {
		dk := nnList.MaxDistance()
		dep := e.distToParent
		radius := childRadius(e)

		if math.Abs(dqp-dep) > dk+radius {
			continue
		}

		dist := metric.Distance(query, e.repr)

		if !e.isRouting {
			if dist <= dk {
				nnList.Insert(e.repr, dist)
				pruneCandidates(candidates, nnList.MaxDistance())
			}
			continue
		}

		dmin := math.Max(0, dist-e.coveringRadius)
		if dmin <= dk {
			*candidates = append(*candidates, candidate[T]{node: e.subtree, lowerBound: dmin})
		}

		dmax := dist + e.coveringRadius
		if dmax < dk {
			nnList.InsertVirtual(dmax)
			pruneCandidates(candidates, nnList.MaxDistance())
		}
	}
}

// pruneCandidates drops any pending candidate whose lower bound now
// exceeds dk, in place. The lower bound recorded at append time is never
// recomputed; it is used to choose pop order and to prune, and is not
// re-derived inside node.search.
func pruneCandidates[T any](candidates *[]candidate[T], dk float64) {
	kept := (*candidates)[:0]
	for _, c := range *candidates {
		if c.lowerBound <= dk {
			kept = append(kept, c)
		}
	}
	*candidates = kept
}
