// Package main is the entry point for the muhasebe CLI.
package main

import (
	"os"

	"github.com/tahadursun/muhasebe/cmd/muhasebe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
