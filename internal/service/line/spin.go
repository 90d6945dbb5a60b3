package line

import (
	"casino_console/internal/metrics"
	"casino_console/internal/model"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrInvalidLines = errors.New("invalid number of lines")
	ErrInvalidBet   = errors.New("invalid bet")
)

// ValidateSpin проверяет количество линий и ставку на линию по границам конфигурации
func (s *serv) ValidateSpin(spinReq model.LineSpin) error {
	if spinReq.Lines < 1 || spinReq.Lines > s.cfg.MaxLines() {
		return fmt.Errorf("%w: %d, must be in [1, %d]", ErrInvalidLines, spinReq.Lines, s.cfg.MaxLines())
	}
	if spinReq.Bet < s.cfg.MinBet() || spinReq.Bet > s.cfg.MaxBet() {
		return fmt.Errorf("%w: %d, must be in [%d, %d]", ErrInvalidBet, spinReq.Bet, s.cfg.MinBet(), s.cfg.MaxBet())
	}
	return nil
}

// Spin выполняет один спин: генерация поля, оценка линий, учет статистики.
// Баланс игрока здесь не трогается, им владеет сессия
func (s *serv) Spin(ctx context.Context, spinReq model.LineSpin) (*model.SpinResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.ValidateSpin(spinReq); err != nil {
		switch {
		case errors.Is(err, ErrInvalidLines):
			metrics.ObserveRejected("lines")
		default:
			metrics.ObserveRejected("bet")
		}
		return nil, err
	}

	// Генерация игрового поля
	s.rngMtx.Lock()
	board := GenerateBoard(s.cfg.Rows(), s.cfg.Cols(), s.cfg.Symbols(), s.rng)
	s.rngMtx.Unlock()

	// Оценка выигрышных линий
	lineWins := EvaluateLines(board, spinReq.Lines, spinReq.Bet, s.cfg.PayoutTable())
	winnings, winningLines := sumWins(lineWins)

	res := &model.SpinResult{
		RoundID:      model.GenerateRoundID(),
		Grid:         board,
		Lines:        spinReq.Lines,
		Bet:          spinReq.Bet,
		Stake:        spinReq.Stake(),
		LineWins:     lineWins,
		WinningLines: winningLines,
		Winnings:     winnings,
	}

	// Обновляем статистику
	s.lineStatsRepo.UpdateState(res.Stake, res.Winnings)
	metrics.ObserveSpin(res.Stake, res.Winnings)

	s.logger.Debug("spin",
		zap.String("round_id", res.RoundID),
		zap.Int("lines", res.Lines),
		zap.Int("bet", res.Bet),
		zap.Int("stake", res.Stake),
		zap.Int("winnings", res.Winnings),
		zap.Ints("winning_lines", res.WinningLines),
	)

	return res, nil
}
