package main

import (
	"time"

	"github.com/arboretum-go/mtree"
	"github.com/arboretum-go/mtree/internal/metric"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newBuildCmd() *cobra.Command {
	var nodeCapacity int
	var metricName string
	ds := (*datasetFlags)(nil)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an M-tree over a generated or loaded data set and report its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := pickMetric(metricName)
			if err != nil {
				return err
			}
			data, _, err := ds.load()
			if err != nil {
				return err
			}

			tree := mtree.New[metric.Vector](nodeCapacity, m)

			start := time.Now()
			for _, v := range data {
				tree.Insert(v)
			}
			elapsed := time.Since(start)

			log.WithFields(logrus.Fields{
				"objects":        tree.Size(),
				"height":         tree.Height(),
				"total_nodes":    tree.TotalNodes(),
				"build_time":     elapsed,
				"distance_calls": m.Calls(),
			}).Info("tree built")
			return nil
		},
	}

	fs := pflag.NewFlagSet("build", pflag.ExitOnError)
	fs.IntVar(&nodeCapacity, "node-capacity", 64, "maximum number of entries per node before it splits")
	fs.StringVar(&metricName, "metric", "euclidean", "distance metric: euclidean, manhattan, chebyshev, cosine, normalized-cosine")
	ds = registerDatasetFlags(fs)
	cmd.Flags().AddFlagSet(fs)

	return cmd
}
