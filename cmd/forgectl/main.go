package main

import (
	"os"

	"github.com/gabfr/forge-go/pkg/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
