package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lfreitas/receitas-api/internal/config"
	"github.com/lfreitas/receitas-api/internal/httpserver"
	"github.com/lfreitas/receitas-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// The process refuses to serve if the database cannot be opened.
	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer st.Close()

	srv := httpserver.New(cfg, st)
	log.Info().Str("addr", cfg.Addr).Str("db", cfg.DatabasePath).Msg("starting recipe API")
	if err := srv.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
