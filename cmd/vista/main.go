// Package main is the entry point for the vista CLI.
package main

import (
	"fmt"
	"os"

	"github.com/go-vista/vista/cmd/vista/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
