package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/builtrix-tech/metergrid/internal/config"
	"github.com/builtrix-tech/metergrid/internal/database"
	httpHandlers "github.com/builtrix-tech/metergrid/internal/http"
	"github.com/builtrix-tech/metergrid/internal/repository"
	"github.com/builtrix-tech/metergrid/internal/service"
)

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
	if err := database.SeedDefaultAccount(db); err != nil {
		log.Fatal().Err(err).Msg("account seed failed")
	}

	svcs := service.New(repository.New(db))
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	httpHandlers.Register(app, svcs)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}
