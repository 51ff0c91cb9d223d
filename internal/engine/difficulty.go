package engine

import "time"

// Difficulty selects the search-time budget handed to the MCTS driver.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts the same three names Difficulty.String
// produces.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	default:
		return 0, false
	}
}

// DifficultyBudgets maps each difficulty to its search-time budget.
var DifficultyBudgets = map[Difficulty]time.Duration{
	Easy:   2 * time.Second,
	Medium: 5 * time.Second,
	Hard:   10 * time.Second,
}
