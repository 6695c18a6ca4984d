// Package main runs the API rounding up the debit transactions of a banking provider.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-rounds/cmd/httpserver"
	"github.com/go-petr/pet-rounds/internal/middleware"
	"github.com/go-petr/pet-rounds/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	server, err := httpserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().
		Str("address", config.ServerAddress).
		Int("users", len(config.Users)).
		Msg("ROUND API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
