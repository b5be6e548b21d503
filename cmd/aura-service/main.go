package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/aura-workspace/aura/workspaceservice"
)

func main() {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	if err := workspaceservice.Run(); err != nil {
		os.Exit(1)
	}
}
