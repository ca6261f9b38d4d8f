package dirnuke

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// outcomeBuffer is the capacity of the shared outcome channel.
// Workers only block on it when the aggregator falls this far behind.
const outcomeBuffer = 4096

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Options configures a single phase.
type Options struct {
	// Roots are validated, pairwise non-nested directories.
	Roots []string
	// Phase selects scanning or removal.
	Phase Phase
	// Debug enables debug output.
	Debug bool
}

// Run walks all roots concurrently, one goroutine per root, and returns the report.
//
// Each worker streams its outcomes into one channel which is drained by the
// calling goroutine; display is only ever touched from there.
// Per-entry failures are part of the report, never returned as errors.
// Cancelling ctx stops the workers early; the report then covers what was done.
func Run(ctx context.Context, opt Options, display Display) (*Report, error) {
	log := logger{enabled: opt.Debug}

	if len(opt.Roots) == 0 {
		return nil, errors.New("no roots to process")
	}

	if display == nil {
		return nil, errors.New("no display given")
	}

	start := time.Now()

	out := make(chan Outcome, outcomeBuffer)
	roots := make([]RootSummary, len(opt.Roots))

	var wg sync.WaitGroup

	for i, root := range opt.Roots {
		wg.Go(func() {
			roots[i] = RootSummary{
				Root:    root,
				Summary: work(ctx, root, opt.Phase, log, out),
			}
		})
	}

	// The channel closes once every worker has returned.
	go func() {
		wg.Wait()
		close(out)
	}()

	total := aggregate(out, display)

	report := &Report{
		Phase:     opt.Phase,
		Total:     total,
		Processed: total.Processed(),
		Roots:     roots,
		Elapsed:   time.Since(start),
	}

	if !report.Consistent() {
		combined := report.Combined()
		log.printf("[debug]: %s: aggregated %+v but workers reported %+v\n", opt.Phase, total, combined)
	}

	return report, nil
}
