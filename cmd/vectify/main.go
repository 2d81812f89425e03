package main

import (
	"fmt"
	"os"

	"github.com/sh5080/vectify-go/cmd/vectify/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
