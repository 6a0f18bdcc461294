package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/mahinuralam/Color-Paletters/internal/server"
	"github.com/mahinuralam/Color-Paletters/internal/server/config"
)

func main() {

	// .env is optional; the environment itself still applies.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
