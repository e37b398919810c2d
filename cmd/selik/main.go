// Package main is the entry point for the Selik vocabulary trainer.
package main

import (
	"os"

	"github.com/louttit/selik/cmd/selik/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
