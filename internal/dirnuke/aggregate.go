package dirnuke

// Display renders the state of a running phase.
// Its methods are only ever called from the aggregating goroutine, so
// implementations need no locking.
type Display interface {
	// Update is called after every outcome with the running totals.
	Update(processed, bytes int64)
	// Failure reports a failed entry. Implementations must leave the progress
	// line intact: clear it, print the diagnostic, draw it again.
	Failure(o Outcome)
	// Finish is called once the channel is drained.
	Finish(total Summary)
}

// aggregate drains in until it is closed and returns the totals.
// It is the only place where outcomes of different roots meet.
func aggregate(in <-chan Outcome, display Display) Summary {
	var total Summary

	for o := range in {
		total.record(o)
		display.Update(total.Processed(), total.Bytes)

		if o.Failed() {
			display.Failure(o)
		}
	}

	display.Finish(total)

	return total
}
