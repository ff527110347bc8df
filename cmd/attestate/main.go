package main

import (
	"os"

	"github.com/the127/attestate/internal/logging"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
