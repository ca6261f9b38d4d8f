package dirnuke

import (
	"errors"
	"fmt"
	"io/fs"
)

// Phase selects what happens to eligible files during a walk.
type Phase int

const (
	// Scan only measures eligible files.
	Scan Phase = iota
	// Nuke removes eligible files.
	Nuke
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case Scan:
		return "scan"
	case Nuke:
		return "nuke"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Label returns the phase name as shown in front of the progress line.
func (p Phase) Label() string {
	switch p {
	case Nuke:
		return "NUKING"
	default:
		return "SCANNING"
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// FailureKind tells at which step an entry failed.
type FailureKind int

const (
	// FailureNone marks a successful outcome.
	FailureNone FailureKind = iota
	// FailureWalk means a directory could not be listed.
	FailureWalk
	// FailureStat means the metadata of an entry could not be read.
	FailureStat
	// FailureRemove means an eligible file could not be deleted.
	FailureRemove
)

func (k FailureKind) String() string {
	switch k {
	case FailureWalk:
		return "walk"
	case FailureStat:
		return "stat"
	case FailureRemove:
		return "remove"
	default:
		return "none"
	}
}

// Outcome is the result of processing one entry.
// It is either a success carrying the file size or a failure carrying an error.
type Outcome struct {
	// Path is the full path of the entry.
	Path string
	// Size is the file size in bytes. Zero for failures.
	Size int64
	// Err is the reason of a failure, nil on success.
	Err error
	// Kind is the step that failed.
	Kind FailureKind
}

func success(path string, size int64) Outcome {
	return Outcome{Path: path, Size: size}
}

func failure(path string, kind FailureKind, err error) Outcome {
	return Outcome{Path: path, Err: err, Kind: kind}
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Vanished reports whether the entry disappeared between being listed and
// being processed, usually because something else removed it meanwhile.
func (o Outcome) Vanished() bool {
	return errors.Is(o.Err, fs.ErrNotExist)
}

// Reason describes the failure for diagnostics.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}

	if o.Vanished() {
		return fmt.Sprintf("vanished during %s: %v", o.Kind, o.Err)
	}

	return fmt.Sprintf("%s failed: %v", o.Kind, o.Err)
}
