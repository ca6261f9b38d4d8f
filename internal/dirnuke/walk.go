package dirnuke

import (
	"context"
	"io/fs"

	"github.com/charlievieth/fastwalk"
)

// walkWorkers is the number of fastwalk goroutines per root.
// A single one keeps the outcomes of a root in visit order and its tally
// confined to one goroutine; parallelism comes from walking roots side by side.
const walkWorkers = 1

// walkRoot visits every entry below root and hands each outcome to emit.
// Skipped entries are not reported. Failures never stop the walk; the only
// errors returned are a cancelled ctx and a root that cannot be walked at all.
//
//nolint:varnamelen // d is standard for DirEntry
func walkRoot(ctx context.Context, root string, phase Phase, log logger, emit func(Outcome)) error {
	conf := &fastwalk.Config{
		Follow:     false, // Never follow symlinks
		NumWorkers: walkWorkers,
	}

	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// fastwalk calls back a second time for a directory it could not read.
			emit(failure(path, FailureWalk, err))

			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		class := Classify(d)

		switch class.Class {
		case Skip:
			return nil
		case Unreadable:
			log.printf("[debug]: cannot stat %s: %v\n", path, class.Err)
			emit(failure(path, FailureStat, class.Err))

			return nil
		case Eligible:
		}

		if phase == Nuke {
			if err := removeFile(path); err != nil {
				emit(failure(path, FailureRemove, err))

				return nil
			}
		}

		emit(success(path, class.Size))

		return nil
	})
}
