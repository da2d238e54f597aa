package harness

import (
	"context"
	"fmt"
	"time"
)

// Timing is the measured cost of one kind of tree operation.
type Timing struct {
	Op      string
	Count   int
	Elapsed time.Duration
}

// PerOp returns the average duration of a single operation.
func (t Timing) PerOp() time.Duration {
	if t.Count == 0 {
		return 0
	}
	return t.Elapsed / time.Duration(t.Count)
}

// Bench times appends, random inserts, lookups, iteration and removals on
// unit-weight trees of N elements.
func (r *Runner) Bench(ctx context.Context) ([]Timing, error) {
	const scenario = "bench"
	r.begin(scenario)
	n := r.cfg.N
	rnd := r.rand(4)
	var timings []Timing
	measure := func(op string, count int, fn func(i int) error) error {
		start := time.Now()
		for i := range count {
			if err := fn(i); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
		timings = append(timings, Timing{Op: op, Count: count, Elapsed: time.Since(start)})
		r.publish(scenario, op, len(timings), 5)
		return nil
	}
	appended := r.newTree()
	if err := measure("append", n, func(i int) error {
		return appended.Insert(i, unitKey(i), i)
	}); err != nil {
		return timings, err
	}
	random := r.newTree()
	if err := measure("insert", n, func(i int) error {
		return random.Insert(rnd.IntN(random.Len()+1), unitKey(i), i)
	}); err != nil {
		return timings, err
	}
	if err := measure("get", n, func(int) error {
		if offset := rnd.IntN(n); !found(appended.Get(offset)) {
			return mismatch(scenario, "Get(%d) found nothing", offset)
		}
		return nil
	}); err != nil {
		return timings, err
	}
	if err := measure("iterate", 1, func(int) error {
		count := 0
		for range appended.All() {
			count++
		}
		if count != n {
			return mismatch(scenario, "iteration yielded %d of %d elements", count, n)
		}
		return nil
	}); err != nil {
		return timings, err
	}
	if err := measure("remove", n, func(int) error {
		if offset := rnd.IntN(random.Len()); !removed(random.Remove(offset)) {
			return mismatch(scenario, "Remove(%d) found nothing", offset)
		}
		return nil
	}); err != nil {
		return timings, err
	}
	for _, t := range timings {
		tracer().Infof("harness: %-8s %8d ops %12v %8v/op", t.Op, t.Count, t.Elapsed, t.PerOp())
	}
	return timings, nil
}

func found(_ int, _ unitKey, _ int, ok bool) bool { return ok }

func removed(_ unitKey, _ int, ok bool) bool { return ok }
