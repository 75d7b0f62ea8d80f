package main

import (
	"os"

	"github.com/pyforge/pyforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
