package main

import (
	"os"

	"github.com/techdeckio/setup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
