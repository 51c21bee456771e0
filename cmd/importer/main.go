package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/builtrix-tech/metergrid/internal/config"
	"github.com/builtrix-tech/metergrid/internal/database"
	"github.com/builtrix-tech/metergrid/internal/ingest"
	"github.com/builtrix-tech/metergrid/internal/repository"
)

// One-shot batch job: loads the three input files from DATA_DIR into the
// store, sequentially. Exits non-zero on any store failure; rows written
// before the failure stay in place.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	im := ingest.New(repository.New(db), log.Logger)
	if err := im.Run(config.DataDir()); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	log.Info().Msg("import complete")
}
