package dirnuke

import (
	"io/fs"
)

// Class is the verdict of Classify on a single entry.
type Class int

const (
	// Skip covers directories, symbolic links and other non-regular entries.
	// Skipped entries produce no outcome at all.
	Skip Class = iota
	// Eligible is a regular file that is not a symbolic link.
	Eligible
	// Unreadable is an entry whose metadata could not be read.
	Unreadable
)

func (c Class) String() string {
	switch c {
	case Eligible:
		return "eligible"
	case Unreadable:
		return "unreadable"
	default:
		return "skip"
	}
}

// Classification is the result of Classify.
// Size is set for Eligible entries, Err for Unreadable ones.
type Classification struct {
	Class Class
	Size  int64
	Err   error
}

// Classify decides what to do with an entry met during a walk.
// It never follows links: the link bit is checked before anything else,
// so a link to a regular file is skipped like a link to a directory.
func Classify(d fs.DirEntry) Classification {
	if d == nil {
		return Classification{Class: Skip}
	}

	if d.Type()&fs.ModeSymlink != 0 || d.IsDir() {
		return Classification{Class: Skip}
	}

	info, err := d.Info()
	if err != nil {
		return Classification{Class: Unreadable, Err: err}
	}

	// The entry may have been replaced since it was listed.
	mode := info.Mode()
	if mode&fs.ModeSymlink != 0 || !mode.IsRegular() {
		return Classification{Class: Skip}
	}

	return Classification{Class: Eligible, Size: info.Size()}
}
