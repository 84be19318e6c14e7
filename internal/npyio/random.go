package npyio

import (
	"math"
	"math/rand/v2"
)

// RandomUniform generates n random d-dimensional vectors with every
// coordinate drawn uniformly from [lower, upper).
func RandomUniform(n, d int, seed uint64, lower, upper float64) []Vector {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]Vector, n)
	for i := range out {
		v := make(Vector, d)
		for j := range v {
			v[j] = lower + rng.Float64()*(upper-lower)
		}
		out[i] = v
	}
	return out
}

// RandomUnit generates n random d-dimensional unit vectors (each
// coordinate drawn from a standard normal distribution, then the vector
// is renormalized to unit length).
func RandomUnit(n, d int, seed uint64) []Vector {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]Vector, n)
	for i := range out {
		v := make(Vector, d)
		norm := 0.0
		for j := range v {
			v[j] = standardNormal(rng)
			norm += v[j] * v[j]
		}
		norm = math.Sqrt(norm)
		for j := range v {
			v[j] /= norm
		}
		out[i] = v
	}
	return out
}

// standardNormal draws one standard-normal sample via the Box-Muller
// transform. math/rand/v2 dropped the NormFloat64 convenience method v1
// had, so this is the one spot that has to reimplement it.
func standardNormal(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Vector is a float64 feature vector, kept as a distinct name from
// metric.Vector so this package has no import-time dependency on the
// metric package; the two are structurally identical and freely
// convertible.
type Vector = []float64
