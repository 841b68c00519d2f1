package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/config"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/repositories"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/routes"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	gin.SetMode(cfg.GinMode)

	store, err := repositories.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open data store")
	}

	r := routes.SetupRouter(store, cfg, log)
	log.Info().Str("port", cfg.Port).Msg("servidor rodando")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
