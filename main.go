// ABOUTME: Entry point for the sonido terminal audio player
// ABOUTME: Runs the root command and maps failures to a non-zero exit code

// Package main provides the entry point for sonido, a keyboard-driven terminal audio player.
package main

import (
	"fmt"
	"io"
	"os"
)

// version is shown by --version and in the app title
const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}
