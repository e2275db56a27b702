package main

import (
	"os"

	"github.com/liasse-dev/liasse/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
