//go:build !unix

package dirnuke

import (
	"fmt"
	"os"
)

// removeFile removes path if it is still a regular file.
func removeFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("remove %s: no longer a regular file", path)
	}

	return os.Remove(path)
}
