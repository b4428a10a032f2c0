// Package main is the entry point for the configurator server.
package main

import (
	"os"

	"github.com/Gorgui12/tekalis-configurator/cmd/configurator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
