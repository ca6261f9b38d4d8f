package dirnuke

import (
	"context"
)

// work runs the walk of one root and forwards every outcome to out.
// The returned summary is tallied privately by the worker and is only used to
// cross-check the aggregator's totals.
func work(ctx context.Context, root string, phase Phase, log logger, out chan<- Outcome) Summary {
	var tally Summary

	emit := func(o Outcome) {
		tally.record(o)
		out <- o
	}

	log.printf("[debug]: %s: walking %s\n", phase, root)

	if err := walkRoot(ctx, root, phase, log, emit); err != nil && ctx.Err() == nil {
		emit(failure(root, FailureWalk, err))
	}

	log.printf("[debug]: %s: done with %s: %d ok, %d failed\n", phase, root, tally.Succeeded, tally.Failed)

	return tally
}
