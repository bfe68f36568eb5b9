package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	// Register connector implementations.
	_ "github.com/crimson-sun/menubot/internal/connector/campusdish"
	_ "github.com/crimson-sun/menubot/internal/connector/file"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
