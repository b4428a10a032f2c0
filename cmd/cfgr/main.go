// Package main is the entry point for the cfgr CLI client.
package main

import (
	"github.com/Gorgui12/tekalis-configurator/cmd/cfgr/cmd"
)

func main() {
	cmd.Execute()
}
