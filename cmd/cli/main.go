package main

import (
	"fmt"
	"os"

	"github.com/pratik-mahalle/recommendations/internal/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "recsvc: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
