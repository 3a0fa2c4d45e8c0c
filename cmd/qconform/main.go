package main

import (
	"fmt"
	"os"

	// Register the reference statevector device.
	_ "github.com/example/go-qconform/internal/simulator"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
