package main

import (
	"fmt"

	"github.com/arboretum-go/mtree/internal/metric"
	"github.com/arboretum-go/mtree/internal/npyio"
	"github.com/spf13/pflag"
)

// datasetFlags configures where benchmark vectors come from: a synthetic
// generator (seed, count, dimension, distribution) or an .npy file on
// disk, selected at flag-parse time rather than compiled in.
type datasetFlags struct {
	seed      int64
	n         int
	querySize int
	dimension int
	maxf      float64
	distrib   string
	dataPath  string
	queryPath string
}

func registerDatasetFlags(fs *pflag.FlagSet) *datasetFlags {
	f := &datasetFlags{}
	fs.Int64Var(&f.seed, "seed", 263, "random seed for synthetic data generation")
	fs.IntVar(&f.n, "n", 20_000, "number of data objects to generate or load")
	fs.IntVar(&f.querySize, "query-size", 100, "number of query objects to generate or load")
	fs.IntVar(&f.dimension, "dimension", 10, "dimension of synthetic feature vectors")
	fs.Float64Var(&f.maxf, "maxf", 100, "bound of the uniform distribution's hypervolume")
	fs.StringVar(&f.distrib, "distribution", "uniform", `synthetic vector distribution: "uniform" or "unit"`)
	fs.StringVar(&f.dataPath, "data-npy", "", "load data objects from this .npy file instead of generating them")
	fs.StringVar(&f.queryPath, "query-npy", "", "load query objects from this .npy file instead of generating them")
	return f
}

func (f *datasetFlags) load() (data, queries []metric.Vector, err error) {
	if f.dataPath != "" {
		m, err := npyio.Load(f.dataPath, f.n)
		if err != nil {
			return nil, nil, fmt.Errorf("loading data objects: %w", err)
		}
		data = matrixToVectors(m)
	} else {
		data = generate(f.distrib, f.n, f.dimension, uint64(f.seed), f.maxf)
	}

	if f.queryPath != "" {
		m, err := npyio.Load(f.queryPath, f.querySize)
		if err != nil {
			return nil, nil, fmt.Errorf("loading query objects: %w", err)
		}
		queries = matrixToVectors(m)
	} else {
		queries = generate(f.distrib, f.querySize, f.dimension, uint64(f.seed)+1, f.maxf)
	}

	return data, queries, nil
}

func generate(distrib string, n, d int, seed uint64, maxf float64) []metric.Vector {
	var raw []npyio.Vector
	switch distrib {
	case "unit":
		raw = npyio.RandomUnit(n, d, seed)
	default:
		raw = npyio.RandomUniform(n, d, seed, -maxf, maxf)
	}
	out := make([]metric.Vector, len(raw))
	for i, v := range raw {
		out[i] = metric.Vector(v)
	}
	return out
}

func matrixToVectors(m *npyio.Matrix) []metric.Vector {
	out := make([]metric.Vector, m.Rows)
	for i := range out {
		out[i] = metric.Vector(m.Row(i))
	}
	return out
}

func pickMetric(name string) (*metric.Counting, error) {
	switch name {
	case "euclidean":
		return metric.Euclidean(), nil
	case "manhattan":
		return metric.Manhattan(), nil
	case "chebyshev":
		return metric.Chebyshev(), nil
	case "cosine":
		return metric.Cosine(), nil
	case "normalized-cosine":
		return metric.NormalizedCosine(), nil
	default:
		return nil, fmt.Errorf("unknown metric %q", name)
	}
}
