package main

import (
	"github.com/npillmayer/dstructs/internal/harness"
	"github.com/spf13/cobra"
)

func benchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time tree operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := harness.New(opts.config())
			if err != nil {
				return err
			}
			defer r.Close()
			timings, err := r.Bench(cmd.Context())
			if err != nil {
				fail("bench: %v", err)
				return err
			}
			for _, t := range timings {
				pass("%-8s %8d ops %12v %8v/op", t.Op, t.Count, t.Elapsed, t.PerOp())
			}
			return nil
		},
	}
}
