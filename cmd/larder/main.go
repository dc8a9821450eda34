// Package main provides the larder CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "larder:", err)
		os.Exit(exitUserError)
	}
}
