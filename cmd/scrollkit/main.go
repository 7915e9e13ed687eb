package main

import (
	"os"

	"github.com/phanxgames/scrollkit/cmd/scrollkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
