package main

// Main entry point of the application.

import (
	"fmt"
	"os"

	"github.com/ayushsubedi/chartrace/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
