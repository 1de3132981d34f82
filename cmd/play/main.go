package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row-3d/internal/config"
	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
	"github.com/iamasit07/4-in-a-row-3d/internal/service/game"
	"github.com/iamasit07/4-in-a-row-3d/internal/transport/console"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println(config.Usage())
		return
	}

	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			fmt.Fprintln(os.Stderr, "No .env file found")
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, config.Usage())
		os.Exit(2)
	}
	config.SetupLogging(cfg.LogLevel)

	patterns := domain.DefaultPatterns()
	engine := cfg.Engine(patterns)
	log.Info().
		Str("difficulty", string(engine.Difficulty)).
		Str("bot", domain.GetBotName(string(engine.Difficulty))).
		Int("depth", engine.SearchDepth()).
		Int("workers", engine.Workers).
		Msg("engine ready")

	notifier := console.NewNotifier(os.Stdout, cfg.PlayOutput, cfg.Human())
	session, err := game.NewGameSession(patterns, cfg.Human(), engine, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.Run(ctx, os.Stdin, notifier, session); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
	log.Info().Msg("bye")
}
