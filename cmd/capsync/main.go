package main

import (
	"os"

	"github.com/samkrish/capsync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
