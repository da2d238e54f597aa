package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/npillmayer/dstructs/internal/harness"
	"github.com/spf13/cobra"
)

func validateCmd(opts *options) *cobra.Command {
	var scenario string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run validation scenarios against reference models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), opts, scenario)
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", "all", "scenario to run (build, drain, mixed, all)")
	cmd.Flags().IntVar(&opts.ops, "ops", 0, "operations of the mixed scenario (default 2n)")
	return cmd
}

func runValidate(ctx context.Context, opts *options, scenario string) error {
	r, err := harness.New(opts.config())
	if err != nil {
		return err
	}
	scenarios := map[string]func(context.Context) (harness.Report, error){
		"build": r.Build,
		"drain": r.Drain,
		"mixed": r.Mixed,
	}
	var order []string
	switch scenario {
	case "all":
		order = []string{"build", "drain", "mixed"}
	case "build", "drain", "mixed":
		order = []string{scenario}
	default:
		r.Close()
		return fmt.Errorf("unknown scenario %q", scenario)
	}
	wg := followProgress(r)
	var failed error
	for _, name := range order {
		rep, err := scenarios[name](ctx)
		if err != nil {
			fail("%-6s %v", name, err)
			failed = err
			continue
		}
		pass("%-6s %d elements, depth %d, digest %016x, %v", name, rep.Elements, rep.Depth,
			rep.Digest, rep.Elapsed)
	}
	r.Close()
	wg.Wait()
	return failed
}

// followProgress prints runner events until the runner is closed.
func followProgress(r *harness.Runner) *sync.WaitGroup {
	var wg sync.WaitGroup
	ch, ok := r.Subscribe(context.Background(), 64)
	if !ok {
		return &wg
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for msg := range ch {
			if e, ok := msg.(harness.Event); ok {
				info("  %s", e)
			}
		}
	}()
	return &wg
}
