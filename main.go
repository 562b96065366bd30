package main

import (
	"os"

	"github.com/praxisprep/praxis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
