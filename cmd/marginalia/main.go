package main

import (
	"context"
	"os"

	"marginalia/internal/bootstrap"
	"marginalia/internal/cli"
	"marginalia/internal/config"
	"marginalia/internal/tracer"
)

func main() {
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer("marginalia-cli")
	defer shutdownTracer(context.Background())

	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	app := &cli.App{
		Conversations: container.ConversationService,
		Library:       container.LibraryService,
		Clips:         container.ClipService,
		Search:        container.SearchService,
		Imports:       container.ImportService,
		Out:           os.Stdout,
	}

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		app.PrintError(err)
		os.Exit(1)
	}
}
