package main

import (
	"os"

	"github.com/Alp4ka/gopaginator/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.NewRootCmd().Execute(); err != nil {
		return 1
	}

	return 0
}
