package main

import (
	"os"

	"github.com/sergei-lamce/STraSAK/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
