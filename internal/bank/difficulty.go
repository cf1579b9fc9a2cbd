package bank

import "fmt"

// Difficulty is the closed set of question difficulty levels.
// The numeric values define a total order: Easy < Medium < Hard.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the canonical bank-file spelling of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty converts a bank-file difficulty string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "Easy":
		return Easy, nil
	case "Medium":
		return Medium, nil
	case "Hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("invalid difficulty %q: must be Easy, Medium, or Hard", s)
}
