// Package baseline provides a linear-scan kNN searcher, used by
// cmd/mtreebench as the baseline an MTree's query cost is compared against.
package baseline

import "sort"

// Metric mirrors the subset of mtree.Metric this package needs, so it has
// no import-time dependency on the mtree package itself.
type Metric[T any] interface {
	Distance(a, b T) float64
}

// Searcher holds every object added to it and answers kNN queries by
// evaluating the metric against every held object.
type Searcher[T any] struct {
	metric Metric[T]
	data   []T
}

// New constructs an empty Searcher using metric.
func New[T any](metric Metric[T]) *Searcher[T] {
	return &Searcher[T]{metric: metric}
}

// Add appends obj to the searcher's data set.
func (s *Searcher[T]) Add(obj T) {
	s.data = append(s.data, obj)
}

// AddAll appends every object in objs to the searcher's data set.
func (s *Searcher[T]) AddAll(objs []T) {
	s.data = append(s.data, objs...)
}

// Size returns the number of objects held by the searcher.
func (s *Searcher[T]) Size() int {
	return len(s.data)
}

// Result is one (object, distance) pair returned by KNN.
type Result[T any] struct {
	Object   T
	Distance float64
}

// KNN evaluates the metric against every held object and returns the k
// closest to query, in ascending distance order, breaking ties by the
// order objects were added (a stable sort keeps the order deterministic,
// like NNList's insertion-order tie-break).
func (s *Searcher[T]) KNN(query T, k int) []Result[T] {
	if k > len(s.data) {
		k = len(s.data)
	}
	if k <= 0 {
		return nil
	}

	results := make([]Result[T], len(s.data))
	for i, obj := range s.data {
		results[i] = Result[T]{Object: obj, Distance: s.metric.Distance(query, obj)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	return results[:k]
}
