//go:build unix

package dirnuke

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// removeFile unlinks path. Unlike os.Remove it never falls back to rmdir,
// so an entry replaced by an empty directory after classification stays.
func removeFile(path string) error {
	for {
		err := unix.Unlink(path)
		if err == unix.EINTR {
			continue
		}

		if err != nil {
			return &fs.PathError{Op: "unlink", Path: path, Err: err}
		}

		return nil
	}
}
