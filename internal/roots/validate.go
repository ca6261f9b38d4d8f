package roots

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNestedRoots is returned when one root contains another.
var ErrNestedRoots = errors.New("nested directories in config")

// Validate resolves every path to its canonical form and returns the usable roots
// in the order they were given.
//
// Paths that do not exist or are not directories are dropped, duplicates are kept
// once; both are reported to notices. Nested roots are an error. All conflicts are
// collected before returning so they can be fixed in one go.
func Validate(paths []string, notices io.Writer) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoRoots
	}

	if notices == nil {
		notices = io.Discard
	}

	var (
		kept      []string
		conflicts []error
	)

paths:
	for _, raw := range paths {
		resolved, err := Resolve(raw)
		if err != nil {
			fmt.Fprintf(notices, "Path '%s' does not exist, skipping\n", raw)

			continue
		}

		info, err := os.Stat(resolved)
		if err != nil {
			fmt.Fprintf(notices, "Path '%s' does not exist, skipping\n", resolved)

			continue
		}

		if !info.IsDir() {
			fmt.Fprintf(notices, "Path '%s' is not a directory, skipping\n", resolved)

			continue
		}

		for _, other := range kept {
			if other == resolved {
				fmt.Fprintf(notices, "Path '%s' is duplicated in config, only one kept\n", resolved)

				continue paths
			}

			if Nested(other, resolved) {
				conflicts = append(conflicts, fmt.Errorf("%w: '%s' and '%s'", ErrNestedRoots, resolved, other))

				continue paths
			}
		}

		kept = append(kept, resolved)
	}

	if len(conflicts) > 0 {
		return nil, errors.Join(conflicts...)
	}

	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: none of the configured paths exist", ErrNoRoots)
	}

	return kept, nil
}

// Resolve expands a leading '~', makes path absolute and resolves symbolic links.
// It fails if the path does not exist.
func Resolve(path string) (string, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	return filepath.EvalSymlinks(abs)
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}

	return filepath.Join(home, path[1:]), nil
}

// Nested reports whether one of a and b is an ancestor of the other.
// Both must be clean absolute paths. Equal paths are not nested.
func Nested(a, b string) bool {
	return contains(a, b) || contains(b, a)
}

// contains reports whether child lies strictly below parent.
// The comparison is by path component, so "/tmp/a" does not contain "/tmp/ab".
func contains(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
