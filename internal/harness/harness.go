package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/dstructs/ordbtree"
)

// Config configures a Runner. Zero fields select defaults.
type Config struct {
	N    int    // number of elements per scenario
	Base int    // branching parameter of the trees under test
	Seed uint64 // seed for all random choices
	Ops  int    // number of operations of the mixed scenario
}

func (cfg Config) normalized() Config {
	if cfg.N <= 0 {
		cfg.N = 10000
	}
	if cfg.Base == 0 {
		cfg.Base = ordbtree.DefaultBase
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if cfg.Ops <= 0 {
		cfg.Ops = 2 * cfg.N
	}
	return cfg
}

// Event reports the progress of a scenario.
type Event struct {
	Scenario string
	Phase    string
	Done     int
	Total    int
	Elapsed  time.Duration
}

func (e Event) String() string {
	return fmt.Sprintf("%-8s %-10s %6d/%-6d %v", e.Scenario, e.Phase, e.Done, e.Total,
		e.Elapsed.Round(time.Microsecond))
}

// Report is the outcome of a validation scenario.
type Report struct {
	Scenario    string
	Elements    int // elements touched by the scenario
	Depth       int // maximum tree depth observed
	Digest      uint64
	ModelDigest uint64
	Elapsed     time.Duration
}

// Runner executes scenarios and broadcasts their progress.
type Runner struct {
	cfg   Config
	cast  *caster.Caster
	start time.Time
}

// New creates a runner. The tree configuration is validated up front.
func New(cfg Config) (*Runner, error) {
	cfg = cfg.normalized()
	if _, err := ordbtree.NewWithConfig[unitKey, int](ordbtree.Config{Base: cfg.Base}); err != nil {
		return nil, err
	}
	return &Runner{
		cfg:  cfg,
		cast: caster.New(nil),
	}, nil
}

// Config returns the effective configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Subscribe returns a channel receiving Event values until the runner is
// closed or ctx is done.
func (r *Runner) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return r.cast.Sub(ctx, capacity)
}

// Close ends all subscriptions.
func (r *Runner) Close() {
	r.cast.Close()
}

func (r *Runner) begin(scenario string) {
	r.start = time.Now()
	tracer().Infof("harness: scenario %s, n=%d, base=%d, seed=%d", scenario, r.cfg.N, r.cfg.Base, r.cfg.Seed)
	r.publish(scenario, "start", 0, r.cfg.N)
}

func (r *Runner) publish(scenario, phase string, done, total int) {
	r.cast.Pub(Event{
		Scenario: scenario,
		Phase:    phase,
		Done:     done,
		Total:    total,
		Elapsed:  time.Since(r.start),
	})
}

// progress publishes every 1/16th of total and reports cancellation.
func (r *Runner) progress(ctx context.Context, scenario, phase string, done, total int) error {
	step := max(total/16, 1)
	if done%step != 0 && done != total {
		return nil
	}
	r.publish(scenario, phase, done, total)
	return ctx.Err()
}

func (r *Runner) newTree() *ordbtree.Tree[unitKey, int] {
	tree, err := ordbtree.NewWithConfig[unitKey, int](ordbtree.Config{Base: r.cfg.Base})
	if err != nil {
		panic(err) // validated in New
	}
	return tree
}

func mismatch(scenario string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMismatch, scenario, fmt.Sprintf(format, args...))
}
