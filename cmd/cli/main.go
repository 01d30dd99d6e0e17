// Package main is the entry point for the nutricalc CLI.
package main

import (
	"os"

	"nutricalc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
