package main

import (
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"manhunt/internal/board"
	"manhunt/internal/config"
	"manhunt/internal/server"
	"manhunt/internal/session"
	"manhunt/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	store, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer store.Close()

	maps := board.NewRegistry()
	maps.Register(board.Riverton())

	mgr := session.NewManager(store, maps, session.Config{
		TurnTimeout: cfg.TurnTimeout,
		Retries:     cfg.CommitRetries,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	go mgr.CleanupLoop(cfg.CleanupEvery, cfg.CleanupMaxAge)

	srv := server.New(mgr)

	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}
