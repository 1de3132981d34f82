package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
	"github.com/iamasit07/4-in-a-row-3d/internal/service/bot"
	"github.com/iamasit07/4-in-a-row-3d/internal/service/selfplay"
)

type Config struct {
	BotDifficulty string `yaml:"bot_difficulty" env:"BOT_DIFFICULTY" env-default:"medium" env-description:"easy, medium or hard"`
	SearchDepth   int    `yaml:"search_depth" env:"SEARCH_DEPTH" env-default:"0" env-description:"fixed search depth, 0 uses the difficulty"`
	SearchWorkers int    `yaml:"search_workers" env:"SEARCH_WORKERS" env-default:"1" env-description:"goroutines for the root split, 1 searches sequentially"`
	HumanPlayer   string `yaml:"human_player" env:"HUMAN_PLAYER" env-default:"X" env-description:"side played by the human, X moves first"`
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	PlayOutput    string `yaml:"play_output" env:"PLAY_OUTPUT" env-default:"text" env-description:"text or json"`

	SelfPlay SelfPlayConfig `yaml:"selfplay"`
}

type SelfPlayConfig struct {
	Games       int    `yaml:"games" env:"SELFPLAY_GAMES" env-default:"20"`
	X           string `yaml:"x" env:"SELFPLAY_X" env-default:"medium"`
	O           string `yaml:"o" env:"SELFPLAY_O" env-default:"medium"`
	RandomPlies int    `yaml:"random_plies" env:"SELFPLAY_RANDOM_PLIES" env-default:"4"`
	Seed        uint64 `yaml:"seed" env:"SELFPLAY_SEED" env-default:"1"`
	Parallel    int    `yaml:"parallel" env:"SELFPLAY_PARALLEL" env-default:"4"`
}

var AppConfig *Config

// LoadConfig reads the YAML file named by CONFIG_PATH when it is set, then the
// environment, which wins over the file.
func LoadConfig() (*Config, error) {
	var cfg Config
	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	AppConfig = &cfg
	return AppConfig, nil
}

func (c *Config) Validate() error {
	if _, err := domain.ParsePlayer(c.HumanPlayer); err != nil {
		return fmt.Errorf("HUMAN_PLAYER: %w", err)
	}
	if c.SearchDepth < 0 {
		return fmt.Errorf("SEARCH_DEPTH must not be negative, got %d", c.SearchDepth)
	}
	switch c.PlayOutput {
	case "text", "json":
	default:
		return fmt.Errorf("PLAY_OUTPUT must be text or json, got %q", c.PlayOutput)
	}
	if c.SelfPlay.Games < 0 || c.SelfPlay.RandomPlies < 0 {
		return fmt.Errorf("selfplay games and random plies must not be negative")
	}
	return nil
}

func (c *Config) Human() domain.PlayerID {
	p, _ := domain.ParsePlayer(c.HumanPlayer)
	return p
}

// Engine builds the bot engine described by the config.
func (c *Config) Engine(patterns domain.PatternSet) *bot.Engine {
	e := bot.NewEngine(patterns, bot.ParseDifficulty(strings.ToLower(c.BotDifficulty)))
	e.Depth = c.SearchDepth
	e.Workers = c.SearchWorkers
	return e
}

// Match builds the engine-vs-engine setup from the SELFPLAY_ settings. Both
// engines share the configured depth override and worker count.
func (c *Config) Match(patterns domain.PatternSet) selfplay.MatchConfig {
	side := func(difficulty string) *bot.Engine {
		e := bot.NewEngine(patterns, bot.ParseDifficulty(strings.ToLower(difficulty)))
		e.Depth = c.SearchDepth
		e.Workers = c.SearchWorkers
		return e
	}
	return selfplay.MatchConfig{
		Games:       c.SelfPlay.Games,
		X:           side(c.SelfPlay.X),
		O:           side(c.SelfPlay.O),
		RandomPlies: c.SelfPlay.RandomPlies,
		Seed:        c.SelfPlay.Seed,
		Parallel:    c.SelfPlay.Parallel,
		Patterns:    patterns,
	}
}

// Usage lists the environment variables understood by LoadConfig.
func Usage() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return header
	}
	return text
}

// SetupLogging points the global zerolog logger at stderr.
func SetupLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
