package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/iamasit07/4-in-a-row-3d/internal/domain"
	"github.com/iamasit07/4-in-a-row-3d/internal/service/bot"
)

func TestLoadConfigDefaults(t *testing.T) {
	is := is.New(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := LoadConfig()
	is.NoErr(err)
	is.Equal(cfg.BotDifficulty, "medium")
	is.Equal(cfg.SearchDepth, 0)
	is.Equal(cfg.SearchWorkers, 1)
	is.Equal(cfg.Human(), domain.Player1)
	is.Equal(cfg.PlayOutput, "text")
	is.Equal(cfg.SelfPlay.Games, 20)
	is.Equal(cfg.SelfPlay.Seed, uint64(1))
	is.Equal(AppConfig, cfg)

	e := cfg.Engine(domain.DefaultPatterns())
	is.Equal(e.Difficulty, bot.DifficultyMedium)
	is.Equal(e.SearchDepth(), bot.DEFAULT_DEPTH)
}

func TestLoadConfigFromEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("BOT_DIFFICULTY", "Hard")
	t.Setenv("SEARCH_WORKERS", "3")
	t.Setenv("HUMAN_PLAYER", "O")
	t.Setenv("SELFPLAY_RANDOM_PLIES", "6")

	cfg, err := LoadConfig()
	is.NoErr(err)
	is.Equal(cfg.Human(), domain.Player2)
	is.Equal(cfg.SelfPlay.RandomPlies, 6)

	e := cfg.Engine(nil)
	is.Equal(e.Difficulty, bot.DifficultyHard)
	is.Equal(e.Workers, 3)
}

func TestLoadConfigFromFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("bot_difficulty: easy\nsearch_depth: 2\nselfplay:\n  games: 5\n  x: hard\n"), 0o600)
	is.NoErr(err)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SELFPLAY_GAMES", "7")

	cfg, err := LoadConfig()
	is.NoErr(err)
	is.Equal(cfg.BotDifficulty, "easy")
	is.Equal(cfg.SearchDepth, 2)
	is.Equal(cfg.SelfPlay.X, "hard")
	is.Equal(cfg.SelfPlay.O, "medium")
	is.Equal(cfg.SelfPlay.Games, 7) // environment wins over the file

	m := cfg.Match(nil)
	is.Equal(m.Games, 7)
	is.Equal(m.X.(*bot.Engine).Difficulty, bot.DifficultyHard)
	is.Equal(m.O.(*bot.Engine).SearchDepth(), 2)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	for key, value := range map[string]string{
		"HUMAN_PLAYER": "Z",
		"SEARCH_DEPTH": "-1",
		"PLAY_OUTPUT":  "xml",
	} {
		t.Run(key, func(t *testing.T) {
			is := is.New(t)
			t.Setenv(key, value)
			_, err := LoadConfig()
			is.True(err != nil)
		})
	}
}

func TestUsageListsVariables(t *testing.T) {
	is := is.New(t)
	u := Usage()
	for _, key := range []string{"BOT_DIFFICULTY", "SEARCH_DEPTH", "HUMAN_PLAYER", "SELFPLAY_SEED"} {
		is.True(strings.Contains(u, key))
	}
}

