package mtree

// Metric evaluates the distance between two objects of type T. A valid
// Metric is symmetric, zero iff its arguments are equal, non-negative, and
// obeys the triangle inequality: d(a, c) <= d(a, b) + d(b, c). The tree
// cannot check these properties locally; supplying a Metric that violates
// them is undefined behavior — the tree's invariants silently stop
// holding.
//
// Calls tracks the number of times Distance has been invoked since the
// last ResetCounter, so tests and benchmarks can compare the number of
// distance evaluations an MTree needs against a linear scan.
type Metric[T any] interface {
	Distance(a, b T) float64
	ResetCounter()
	Calls() int64
}

// Equatable is an opt-in interface for object types whose equality cannot
// be expressed with Go's comparable constraint (slices, maps, pointers to
// mutable state). When an object implements Equatable, the tree's
// per-entry query-distance cache (see entry.distanceToQuery) uses it
// instead of falling back to reflect.DeepEqual.
//
// This is an opt-in capability: if present it upgrades behavior, and if
// absent it degrades gracefully rather than failing to compile.
type Equatable[T any] interface {
	Equal(other T) bool
}

// objectsEqual reports whether a and b represent the same object, for the
// sole purpose of deciding whether a cached query distance may be reused.
// It never affects correctness: a false negative here only means a cache
// miss and one extra Metric.Distance call.
func objectsEqual[T any](a, b T) bool {
	if ea, ok := any(a).(Equatable[T]); ok {
		return ea.Equal(b)
	}
	return reflectDeepEqual(a, b)
}
