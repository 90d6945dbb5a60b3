package guess

import (
	"casino_console/internal/model"
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrInvalidUpperBound    = errors.New("upper bound must be at least 1")
	ErrInconsistentFeedback = errors.New("feedback leaves no possible number")
	ErrSolved               = errors.New("number already guessed")
)

// NewTarget Случайное загаданное число в [1, upper]
func NewTarget(upper int, rng *rand.Rand) (int, error) {
	if upper < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidUpperBound, upper)
	}
	return rng.Intn(upper) + 1, nil
}

// Judge Подсказка игроку: загаданное число больше, меньше или угадано
func Judge(target, guess int) model.Hint {
	switch {
	case guess < target:
		return model.HintHigher
	case guess > target:
		return model.HintLower
	default:
		return model.HintCorrect
	}
}
