package main

import (
	"fmt"
	"os"

	"gaschecker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Printf("gaschecker run into an error: %s\n", err)
		os.Exit(1)
	}
}
