// Package metric provides mtree.Metric implementations over float64
// feature vectors: Euclidean, Manhattan, Chebyshev, and two cosine
// variants, each wrapped with call-counting for benchmarking.
package metric

import (
	"fmt"
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
)

// Vector is the feature-vector object type the distance functions in this
// package operate over.
type Vector []float64

// Counting wraps a distance function with the call-counting bookkeeping
// mtree.Metric requires, so callers can compare tree search cost against
// a linear scan by reading Calls() before and after a query.
type Counting struct {
	name string
	fn   func(a, b Vector) float64
	n    atomic.Int64
}

// NewCounting wraps fn, an arbitrary vector distance function, as a
// mtree.Metric[Vector].
func NewCounting(name string, fn func(a, b Vector) float64) *Counting {
	return &Counting{name: name, fn: fn}
}

func (c *Counting) Distance(a, b Vector) float64 {
	c.n.Add(1)
	return c.fn(a, b)
}

func (c *Counting) ResetCounter() { c.n.Store(0) }
func (c *Counting) Calls() int64  { return c.n.Load() }
func (c *Counting) String() string {
	return fmt.Sprintf("%s (%d calls)", c.name, c.Calls())
}

func mustSameLen(a, b Vector) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("metric: vectors have different lengths: %d != %d", len(a), len(b)))
	}
}

// Euclidean returns a counting L2-distance metric, computed via
// gonum.org/v1/gonum/floats.Distance.
func Euclidean() *Counting {
	return NewCounting("euclidean", func(a, b Vector) float64 {
		mustSameLen(a, b)
		return floats.Distance(a, b, 2)
	})
}

// Manhattan returns a counting L1-distance metric, computed via
// gonum.org/v1/gonum/floats.Distance.
func Manhattan() *Counting {
	return NewCounting("manhattan", func(a, b Vector) float64 {
		mustSameLen(a, b)
		return floats.Distance(a, b, 1)
	})
}

// Chebyshev returns a counting L-infinity-distance metric (the largest
// per-coordinate absolute difference), computed via
// gonum.org/v1/gonum/floats.Distance with an infinite norm order.
func Chebyshev() *Counting {
	return NewCounting("chebyshev", func(a, b Vector) float64 {
		mustSameLen(a, b)
		return floats.Distance(a, b, math.Inf(1))
	})
}

// Cosine returns a counting cosine-distance metric (1 - cosine similarity).
// A zero-norm vector is at distance 1 from everything, including itself
// (the distance of two orthogonal vectors; opposite vectors are at 2).
func Cosine() *Counting {
	return NewCounting("cosine", func(a, b Vector) float64 {
		mustSameLen(a, b)
		dot := floats.Dot(a, b)
		normA := floats.Norm(a, 2)
		normB := floats.Norm(b, 2)
		if normA == 0 || normB == 0 {
			return 1
		}
		return 1 - dot/(normA*normB)
	})
}

// NormalizedCosine returns a counting cosine-distance metric for vectors
// the caller has already L2-normalized, skipping the norm computation
// Cosine has to do for un-normalized input.
func NormalizedCosine() *Counting {
	return NewCounting("normalized-cosine", func(a, b Vector) float64 {
		mustSameLen(a, b)
		return 1 - floats.Dot(a, b)
	})
}
