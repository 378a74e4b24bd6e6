package main

import (
	"os"

	"github.com/bnema/zksh/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
