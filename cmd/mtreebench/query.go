package main

import (
	"time"

	"github.com/arboretum-go/mtree"
	"github.com/arboretum-go/mtree/internal/aggregate"
	"github.com/arboretum-go/mtree/internal/baseline"
	"github.com/arboretum-go/mtree/internal/metric"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newQueryCmd() *cobra.Command {
	var nodeCapacity int
	var metricName string
	var k int
	var compareSequential bool
	var groupSize int
	ds := (*datasetFlags)(nil)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Build an M-tree, run kNN queries against it, and report timing and search cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := pickMetric(metricName)
			if err != nil {
				return err
			}
			data, queries, err := ds.load()
			if err != nil {
				return err
			}

			tree := mtree.New[metric.Vector](nodeCapacity, m)
			for _, v := range data {
				tree.Insert(v)
			}

			m.ResetCounter()
			start := time.Now()
			var nodesAccessed int64
			agg := aggregate.New[int]()
			for _, q := range queries {
				result := tree.KNN(q, k)
				nodesAccessed += tree.NodesAccessed()

				if groupSize > 0 {
					hits := make([]aggregate.Hit[int], len(result.Results()))
					for i, r := range result.Results() {
						hits[i] = aggregate.Hit[int]{Identity: objectIndex(data, r.Object) / groupSize, Distance: r.Distance}
					}
					agg.AddQueryResult(hits)
				}
			}
			elapsed := time.Since(start)

			log.WithFields(logrus.Fields{
				"objects":        tree.Size(),
				"queries":        len(queries),
				"k":              k,
				"height":         tree.Height(),
				"total_nodes":    tree.TotalNodes(),
				"nodes_accessed": nodesAccessed,
				"query_time":     elapsed,
				"avg_query_time": elapsed / time.Duration(max(len(queries), 1)),
				"distance_calls": m.Calls(),
			}).Info("query run complete")

			if groupSize > 0 {
				for _, s := range agg.PickBest(5, aggregate.Frequency) {
					log.WithFields(logrus.Fields{"identity": s.Identity, "frequency": s.Score}).Info("top identity by frequency")
				}
			}

			if compareSequential {
				runSequentialComparison(data, queries, metricName, k)
			}
			return nil
		},
	}

	fs := pflag.NewFlagSet("query", pflag.ExitOnError)
	fs.IntVar(&nodeCapacity, "node-capacity", 64, "maximum number of entries per node before it splits")
	fs.StringVar(&metricName, "metric", "euclidean", "distance metric: euclidean, manhattan, chebyshev, cosine, normalized-cosine")
	fs.IntVar(&k, "k", 4, "number of nearest neighbors to retrieve per query")
	fs.BoolVar(&compareSequential, "compare-sequential", false, "also run a linear-scan baseline for comparison")
	fs.IntVar(&groupSize, "group-size", 0, "when > 0, aggregate kNN hits into groups of this many consecutive data objects and report top identities")
	ds = registerDatasetFlags(fs)
	cmd.Flags().AddFlagSet(fs)

	return cmd
}

func runSequentialComparison(data, queries []metric.Vector, metricName string, k int) {
	m, err := pickMetric(metricName)
	if err != nil {
		log.WithError(err).Error("sequential comparison skipped")
		return
	}

	searcher := baseline.New[metric.Vector](m)
	searcher.AddAll(data)

	m.ResetCounter()
	start := time.Now()
	for _, q := range queries {
		searcher.KNN(q, k)
	}
	elapsed := time.Since(start)

	log.WithFields(logrus.Fields{
		"objects":        searcher.Size(),
		"queries":        len(queries),
		"query_time":     elapsed,
		"avg_query_time": elapsed / time.Duration(max(len(queries), 1)),
		"distance_calls": m.Calls(),
	}).Info("sequential baseline complete")
}

// objectIndex finds v's position in data by identity (pointer-equal
// backing array), used only to turn a kNN hit back into the synthetic
// group id assigned when the data set was generated.
func objectIndex(data []metric.Vector, v metric.Vector) int {
	for i := range data {
		if len(data[i]) > 0 && len(v) > 0 && &data[i][0] == &v[0] {
			return i
		}
	}
	return -1
}
