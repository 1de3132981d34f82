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
	"github.com/iamasit07/4-in-a-row-3d/internal/service/selfplay"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println(config.Usage())
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	config.SetupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	match := cfg.Match(domain.DefaultPatterns())
	log.Info().
		Int("games", match.Games).
		Str("x", cfg.SelfPlay.X).
		Str("o", cfg.SelfPlay.O).
		Int("parallel", match.Parallel).
		Uint64("seed", match.Seed).
		Msg("starting selfplay")

	report, err := selfplay.Run(ctx, match)
	if err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}
	fmt.Println(report)
}
