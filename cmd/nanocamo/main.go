package main

import (
	"os"

	"nanocamo/cmd/nanocamo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
