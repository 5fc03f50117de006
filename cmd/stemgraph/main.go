// Command stemgraph simulates microscopy samples from atomic structures and
// reconstructs atom graphs from their masks.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
