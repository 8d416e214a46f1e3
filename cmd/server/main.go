package main

import (
	"bookshelf_backend/internal/app"
	"context"
	"log"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.NewApp().Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
