// Distplot draws scatter plots with marginal histograms of two-feature
// CSV data and prints class-limit reports of discretized data.
//
// Usage:
//
//	distplot plot [flags] data.csv
//	distplot limits [flags] codes.csv clims.csv
//	distplot config show
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
