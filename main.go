package main

import (
	"os"

	"github.com/sanyogitamemphora-maker/memphora-sdk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
