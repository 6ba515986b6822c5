package main

import (
	"os"

	"github.com/mark3labs/solkit-go/cmd/solkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
