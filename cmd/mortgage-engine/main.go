// Package main is the entry point for the mortgage-engine CLI.
package main

import (
	"os"

	"github.com/homelend/mortgage-engine/cmd/mortgage-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
