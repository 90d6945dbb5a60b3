package guess

import (
	"math/rand"
	"testing"

	"casino_console/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudge(t *testing.T) {
	assert.Equal(t, model.HintHigher, Judge(7, 3))
	assert.Equal(t, model.HintLower, Judge(7, 9))
	assert.Equal(t, model.HintCorrect, Judge(7, 7))
}

func TestNewTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n, err := NewTarget(5, rng)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 5)
		seen[n] = true
	}
	assert.Len(t, seen, 5)

	_, err := NewTarget(0, rng)
	assert.ErrorIs(t, err, ErrInvalidUpperBound)
}

// answer Честный ответ игрока, загадавшего target
func answer(target, guess int) model.Feedback {
	switch Judge(target, guess) {
	case model.HintHigher:
		return model.FeedbackLow
	case model.HintLower:
		return model.FeedbackHigh
	default:
		return model.FeedbackCorrect
	}
}

func TestSolverFindsEveryNumber(t *testing.T) {
	const upper = 50
	rng := rand.New(rand.NewSource(3))

	for target := 1; target <= upper; target++ {
		s, err := NewSolver(upper, rng)
		require.NoError(t, err)

		for !s.Done() {
			g, err := s.Next()
			require.NoError(t, err)
			low, high := s.Range()
			require.GreaterOrEqual(t, g, low)
			require.LessOrEqual(t, g, high)
			require.LessOrEqual(t, s.Tries(), upper)
			s.Apply(answer(target, g))
		}
		assert.Equal(t, target, s.Guess())
	}
}

func TestSolverSingleValueRange(t *testing.T) {
	s, err := NewSolver(1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	g, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, g)
}

func TestSolverInconsistentFeedback(t *testing.T) {
	s, err := NewSolver(1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = s.Next()
	require.NoError(t, err)
	s.Apply(model.FeedbackHigh)

	_, err = s.Next()
	assert.ErrorIs(t, err, ErrInconsistentFeedback)
}

func TestSolverUnknownFeedbackKeepsRange(t *testing.T) {
	s, err := NewSolver(10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = s.Next()
	require.NoError(t, err)
	s.Apply(model.Feedback("x"))

	low, high := s.Range()
	assert.Equal(t, 1, low)
	assert.Equal(t, 10, high)
	assert.False(t, s.Done())
}

func TestSolverAfterDone(t *testing.T) {
	s, err := NewSolver(10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	g, err := s.Next()
	require.NoError(t, err)
	s.Apply(model.FeedbackCorrect)

	again, err := s.Next()
	assert.ErrorIs(t, err, ErrSolved)
	assert.Equal(t, g, again)

	_, err = NewSolver(0, nil)
	assert.ErrorIs(t, err, ErrInvalidUpperBound)
}
