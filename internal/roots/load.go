package roots

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrConfigNotFound is returned when the roots file does not exist.
	ErrConfigNotFound = errors.New("config file does not exist")
	// ErrConfigUnreadable is returned when the roots file exists but cannot be read.
	ErrConfigUnreadable = errors.New("could not read config")
	// ErrNoRoots is returned when no usable root is left.
	ErrNoRoots = errors.New("no roots given")
)

// commentPrefix starts a line that is ignored in a roots file.
const commentPrefix = "#"

// Load reads a line-delimited roots file.
// Blank lines and lines starting with '#' are ignored, surrounding whitespace is trimmed.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
		}

		return nil, fmt.Errorf("%w %q: %w", ErrConfigUnreadable, path, err)
	}
	defer file.Close()

	paths, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrConfigUnreadable, path, err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %q lists no paths", ErrNoRoots, path)
	}

	return paths, nil
}

// Parse returns the paths listed in r, one per line.
func Parse(r io.Reader) ([]string, error) {
	var paths []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}
