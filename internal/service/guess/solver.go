package guess

import (
	"casino_console/internal/model"
	"fmt"
	"math/rand"
	"time"
)

// Solver - компьютер угадывает число игрока, сужая диапазон [low, high]
type Solver struct {
	low   int
	high  int
	guess int
	tries int
	done  bool
	rng   *rand.Rand
}

func NewSolver(upper int, rng *rand.Rand) (*Solver, error) {
	if upper < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUpperBound, upper)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Solver{
		low:  1,
		high: upper,
		rng:  rng,
	}, nil
}

// Next Очередная догадка: случайное число из [low, high], либо low, если границы сошлись
func (s *Solver) Next() (int, error) {
	if s.done {
		return s.guess, ErrSolved
	}
	if s.low > s.high {
		return 0, fmt.Errorf("%w: range [%d, %d]", ErrInconsistentFeedback, s.low, s.high)
	}

	if s.low != s.high {
		s.guess = s.low + s.rng.Intn(s.high-s.low+1)
	} else {
		s.guess = s.low
	}
	s.tries++
	return s.guess, nil
}

// Apply Сужает диапазон по ответу игрока на последнюю догадку
func (s *Solver) Apply(feedback model.Feedback) {
	switch feedback {
	case model.FeedbackHigh:
		s.high = s.guess - 1
	case model.FeedbackLow:
		s.low = s.guess + 1
	case model.FeedbackCorrect:
		s.done = true
	}
}

func (s *Solver) Done() bool {
	return s.done
}

// Guess Последняя догадка
func (s *Solver) Guess() int {
	return s.guess
}

func (s *Solver) Tries() int {
	return s.tries
}

// Range Текущие границы поиска
func (s *Solver) Range() (int, int) {
	return s.low, s.high
}
