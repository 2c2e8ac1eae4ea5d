package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if cfg.App.SeedRooms {
		if err := app.Rooms.SeedDefaults(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed default rooms")
		}
	}

	app.HTTP.Serve()
}
