package main

import (
	"os"

	"github.com/joho/godotenv"

	"GazetteDigest/internal/cli/commands"
)

func main() {
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
