package main

import (
	"fmt"
	"os"

	"github.com/m04kA/SMC-CitizenClient/cmd/citizenctl/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
