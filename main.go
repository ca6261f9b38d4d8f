// Command dirnuke scans or empties many directory trees concurrently.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirnuke/internal/cli"
)

// version is set at build time.
var version = "unknown - unofficial build"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
