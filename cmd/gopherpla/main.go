// Command gopherpla reads, rewrites and minimizes PLA files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gopherpla: %v\n", err)
		os.Exit(1)
	}
}
