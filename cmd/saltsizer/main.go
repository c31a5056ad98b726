package main

import (
	"os"

	"saltsizer/cmd/saltsizer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
