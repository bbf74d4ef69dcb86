package main

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"teyuna/internal/server"
	"teyuna/internal/store"
)

// Config is loaded from the environment.
type Config struct {
	Addr     string `env:"TEYUNA_ADDR" envDefault:":8080"`
	DBPath   string `env:"TEYUNA_DB" envDefault:"teyuna.db"`
	LogLevel string `env:"TEYUNA_LOG_LEVEL" envDefault:"info"`
	Pretty   bool   `env:"TEYUNA_LOG_PRETTY" envDefault:"false"`
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("parse config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cfg.Pretty {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open store")
	}
	defer db.Close()

	srv := server.New(cfg.Addr, db, log)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
