package mtree

import "math/rand/v2"

// promoter chooses the two entries of an overflowing node (plus the
// entry that triggered the overflow) whose representatives become the
// new routing pivots during a split. It is a policy seam: tests can pin a
// deterministic promotion for reproducibility, while production trees use
// the reference random policy.
type promoter[T any] interface {
	choosePivots(candidates []*entry[T]) (i, j int)
}

// randomPromoter is the reference promotion policy: two distinct entries
// chosen uniformly at random from the N+1 candidates.
type randomPromoter[T any] struct {
	rng *rand.Rand
}

func newRandomPromoter[T any](rng *rand.Rand) *randomPromoter[T] {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &randomPromoter[T]{rng: rng}
}

func (p *randomPromoter[T]) choosePivots(candidates []*entry[T]) (i, j int) {
	n := len(candidates)
	i = p.rng.IntN(n)
	j = p.rng.IntN(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// firstTwoPromoter is a deterministic promotion policy ("always
// entries[0] and entries[1]") used by tests that need to pin the split
// outcome to assert exact tree shapes.
type firstTwoPromoter[T any] struct{}

func (firstTwoPromoter[T]) choosePivots([]*entry[T]) (i, j int) {
	return 0, 1
}
