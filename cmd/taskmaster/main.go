package main

import (
	"os"

	"github.com/canvassing/pax-rewards/cmd/taskmaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
