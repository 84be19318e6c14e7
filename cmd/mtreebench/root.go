package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mtreebench",
		Short: "Build and query an in-memory M-tree over synthetic or .npy feature vectors",
	}
	root.AddCommand(newBuildCmd())
	root.AddCommand(newQueryCmd())
	return root
}
