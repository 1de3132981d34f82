package bot

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// DEFAULT_DEPTH is the reference search depth, used by medium.
const DEFAULT_DEPTH = 3

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Depth is the fixed search depth used for a difficulty.
func (d BotDifficulty) Depth() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return DEFAULT_DEPTH + 1
	default:
		return DEFAULT_DEPTH
	}
}
