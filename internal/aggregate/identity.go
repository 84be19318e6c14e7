// Package aggregate collapses a batch of per-query kNN result lists into
// per-identity scores: each query's top-k neighbors are features
// belonging to some underlying individual, and the caller wants to know
// which individual the whole batch of queries points at, not which single
// feature vector matched best.
package aggregate

import "sort"

// Mode selects how ByIdentity scores an identity across every hit
// attributed to it.
type Mode int

const (
	// Frequency scores an identity by how many times it appears across
	// all query result lists. Higher is better.
	Frequency Mode = iota
	// Distance scores an identity by the sum of distances of every hit
	// attributed to it. Lower is better.
	Distance
)

// Hit is one (identity, distance) pair taken from a single query's kNN
// result list.
type Hit[I comparable] struct {
	Identity I
	Distance float64
}

// ByIdentity accumulates hits across many per-query result lists and
// reduces them to a per-identity tally.
type ByIdentity[I comparable] struct {
	count    map[I]int
	distSum  map[I]float64
	order    []I
	seenOnce map[I]bool
}

// New constructs an empty ByIdentity aggregator.
func New[I comparable]() *ByIdentity[I] {
	return &ByIdentity[I]{
		count:    make(map[I]int),
		distSum:  make(map[I]float64),
		seenOnce: make(map[I]bool),
	}
}

// AddQueryResult folds one query's kNN hits into the running tally.
func (b *ByIdentity[I]) AddQueryResult(hits []Hit[I]) {
	for _, h := range hits {
		if !b.seenOnce[h.Identity] {
			b.seenOnce[h.Identity] = true
			b.order = append(b.order, h.Identity)
		}
		b.count[h.Identity]++
		b.distSum[h.Identity] += h.Distance
	}
}

// Score is one (identity, score) pair returned by PickBest.
type Score[I comparable] struct {
	Identity I
	Score    float64
}

// PickBest returns the top n identities under mode, in best-first order.
// Under Frequency the score is the raw hit count (descending); under
// Distance the score is the summed distance of every attributed hit
// (ascending).
func (b *ByIdentity[I]) PickBest(n int, mode Mode) []Score[I] {
	scores := make([]Score[I], len(b.order))
	for i, id := range b.order {
		switch mode {
		case Frequency:
			scores[i] = Score[I]{Identity: id, Score: float64(b.count[id])}
		case Distance:
			scores[i] = Score[I]{Identity: id, Score: b.distSum[id]}
		}
	}

	switch mode {
	case Frequency:
		sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	case Distance:
		sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score < scores[j].Score })
	}

	if n > len(scores) {
		n = len(scores)
	}
	return scores[:n]
}
