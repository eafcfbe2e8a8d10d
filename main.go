package main

import (
	"os"

	"github.com/arjunrao/learnpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
