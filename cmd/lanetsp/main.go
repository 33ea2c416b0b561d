// Command lanetsp solves small TSP instances by exhaustive lane-partitioned
// search and speaks the scenario protocol as client or controller.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
