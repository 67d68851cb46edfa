package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/logger"
)

// Applies the schema statements against the configured database and
// exits. The server runs the same migrations on boot; this exists for
// deploy pipelines that migrate before rolling the new binary.
func main() {
	logger.Init("info", "console")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if err := cfg.InitDB(); err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Error().Err(err).Msg("migrations failed")
		os.Exit(1)
	}
	log.Info().Msg("migrations applied")
}
