package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/onboard/internal/onboard/cli"
)

func main() {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
