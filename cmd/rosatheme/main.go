package main

import (
	"fmt"
	"os"

	"github.com/rosagold/rosatheme/internal/cli"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
