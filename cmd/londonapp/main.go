package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/londonapp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.DefaultSetup).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
