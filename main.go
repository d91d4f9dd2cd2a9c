package main

import (
	"os"

	"github.com/listen2bea/listen2bea/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
