package main

import (
	"os"

	"github.com/npillmayer/dstructs/ordbtree"
	"github.com/npillmayer/dstructs/weighted"
	"github.com/spf13/cobra"
)

func dotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Write the structure of a tree of n unit elements in Graphviz DOT format",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := ordbtree.NewWithConfig[weighted.Unit, int](ordbtree.Config{Base: opts.base})
			if err != nil {
				return err
			}
			for i := range opts.n {
				if err := tree.Insert(i, weighted.Unit(i), i); err != nil {
					return err
				}
			}
			return tree.WriteDot(os.Stdout)
		},
	}
}
