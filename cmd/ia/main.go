package main

import (
	"os"

	"github.com/instanimals/instanimals-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
