// Command mtreebench builds an MTree over synthetic or .npy-file feature
// vectors and benchmarks kNN queries against it, reporting build/query
// timing alongside the distance-evaluation and node-access counts needed
// to judge how well the index is pruning.
package main

import "github.com/sirupsen/logrus"

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
