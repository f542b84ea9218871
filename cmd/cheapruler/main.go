package main

import (
	"fmt"
	"os"

	"github.com/apendleton/cheap-ruler/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cheapruler:", err)
		os.Exit(1)
	}
}
