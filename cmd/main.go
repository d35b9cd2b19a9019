// Package main runs the bank model API to manage accounts, banks and transfers.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/bankmodel/cmd/httpserver"
	"github.com/go-petr/bankmodel/internal/middleware"
	"github.com/go-petr/bankmodel/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server, err := httpserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("BANK MODEL API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
