package console

import (
	"casino_console/internal/model"
	"casino_console/internal/service/guess"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// GuessSession - игрок угадывает число компьютера
type GuessSession struct {
	prompt *Prompter
	upper  int
	rng    *rand.Rand
	logger *zap.Logger
}

func NewGuessSession(in io.Reader, out io.Writer, upper int, rng *rand.Rand, logger *zap.Logger) *GuessSession {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuessSession{
		prompt: NewPrompter(in, out),
		upper:  upper,
		rng:    rng,
		logger: logger,
	}
}

// Run Возвращает число попыток. Конец ввода завершает игру без ошибки
func (s *GuessSession) Run(ctx context.Context) (int, error) {
	target, err := guess.NewTarget(s.upper, s.rng)
	if err != nil {
		return 0, err
	}

	tries := 0
	for {
		g, err := askUntilValid(ctx, s.prompt,
			fmt.Sprintf("Guess a number between 1 and %d: ", s.upper),
			func(in string) (int, error) { return ParseGuess(in, s.upper) },
			func(error) string { return fmt.Sprintf("Please enter a whole number between 1 and %d.", s.upper) },
		)
		if err != nil {
			if isStop(err) {
				s.prompt.Printf("The number was %d.\n", target)
				return tries, nil
			}
			return tries, err
		}
		tries++

		switch guess.Judge(target, g) {
		case model.HintHigher:
			s.prompt.Println("You need to guess higher!")
		case model.HintLower:
			s.prompt.Println("You need to guess lower!")
		default:
			s.prompt.Printf("YAY! You have guessed the random number %d correctly!\n", target)
			s.logger.Info("player guessed the number", zap.Int("target", target), zap.Int("tries", tries))
			return tries, nil
		}
	}
}

// ComputerGuessSession - компьютер угадывает число игрока по подсказкам h/l/c
type ComputerGuessSession struct {
	prompt *Prompter
	upper  int
	rng    *rand.Rand
	logger *zap.Logger
}

func NewComputerGuessSession(in io.Reader, out io.Writer, upper int, rng *rand.Rand, logger *zap.Logger) *ComputerGuessSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComputerGuessSession{
		prompt: NewPrompter(in, out),
		upper:  upper,
		rng:    rng,
		logger: logger,
	}
}

// Run Возвращает число догадок компьютера
func (s *ComputerGuessSession) Run(ctx context.Context) (int, error) {
	solver, err := guess.NewSolver(s.upper, s.rng)
	if err != nil {
		return 0, err
	}
	s.prompt.Printf("Think of a number between 1 and %d.\n", s.upper)

	for !solver.Done() {
		g, err := solver.Next()
		if err != nil {
			if errors.Is(err, guess.ErrInconsistentFeedback) {
				s.prompt.Println("Your answers contradict each other, there is no number left to guess.")
				s.logger.Warn("inconsistent feedback", zap.Int("tries", solver.Tries()))
				return solver.Tries(), nil
			}
			return solver.Tries(), err
		}

		fb, err := askUntilValid(ctx, s.prompt,
			fmt.Sprintf("Is %d too high (H), too low (L), or correct? (C) ", g),
			ParseFeedback,
			func(error) string { return "Please answer H, L or C." },
		)
		if err != nil {
			if isStop(err) {
				return solver.Tries(), nil
			}
			return solver.Tries(), err
		}
		solver.Apply(fb)
	}

	s.prompt.Printf("Yay! the computer guessed your number, %d, correctly!\n", solver.Guess())
	s.logger.Info("computer guessed the number", zap.Int("number", solver.Guess()), zap.Int("tries", solver.Tries()))
	return solver.Tries(), nil
}
