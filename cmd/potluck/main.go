package main

import (
	"os"

	"github.com/potluck-dev/potluck/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
