package console

import (
	"casino_console/internal/config"
	"casino_console/internal/model"
	"casino_console/internal/service"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

const quitToken = "q"

// SlotSession - одна игровая сессия автомата: депозит, серия спинов, итоговый баланс
type SlotSession struct {
	id      string
	prompt  *Prompter
	serv    service.LineService
	cfg     config.SlotConfig
	logger  *zap.Logger
	balance int
	rounds  int
}

func NewSlotSession(in io.Reader, out io.Writer, serv service.LineService, logger *zap.Logger) *SlotSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := model.GenerateSessionID()
	return &SlotSession{
		id:     id,
		prompt: NewPrompter(in, out),
		serv:   serv,
		cfg:    serv.Config(),
		logger: logger.With(zap.String("session_id", id)),
	}
}

func (s *SlotSession) ID() string {
	return s.id
}

func (s *SlotSession) Balance() int {
	return s.balance
}

// Run ведет сессию до "q", конца ввода или отмены контекста.
// Возвращает итоговый баланс
func (s *SlotSession) Run(ctx context.Context) (int, error) {
	deposit, err := s.deposit(ctx)
	if err != nil {
		if isStop(err) {
			s.finish()
			return s.balance, nil
		}
		return s.balance, err
	}
	s.balance = deposit
	s.logger.Info("session started", zap.Int("deposit", deposit))

	for {
		// Меньше минимальной ставки на одну линию - играть больше не на что
		if s.balance < s.cfg.MinBet() {
			s.prompt.Printf("You don't have enough money to keep playing. Minimum bet is $%d.\n", s.cfg.MinBet())
			break
		}

		s.prompt.Printf("Current balance is $%d\n", s.balance)
		answer, err := s.prompt.Ask(ctx, "Press enter to play (q to quit)")
		if errors.Is(err, ErrLineTooLong) {
			continue
		}
		if err != nil {
			if isStop(err) {
				break
			}
			return s.balance, err
		}
		if strings.TrimSpace(answer) == quitToken {
			break
		}

		net, err := s.round(ctx)
		if err != nil {
			if isStop(err) {
				break
			}
			return s.balance, err
		}
		s.balance = ApplyNet(s.balance, net)
		if s.balance < 0 {
			// Ставка проверяется до спина, сюда попасть нельзя
			s.logger.Error("negative balance clamped", zap.Int("balance", s.balance))
			s.balance = 0
		}
	}

	s.finish()
	return s.balance, nil
}

// deposit Запрос депозита до первого положительного целого
func (s *SlotSession) deposit(ctx context.Context) (int, error) {
	return askUntilValid(ctx, s.prompt, "What would you like to deposit? $",
		ParseDeposit,
		func(error) string { return fmt.Sprintf("Please enter a valid amount between $1 and $%d.", MaxDeposit) },
	)
}

// round Один раунд: линии, ставка, спин. Возвращает изменение баланса
func (s *SlotSession) round(ctx context.Context) (int, error) {
	lines, err := s.lines(ctx)
	if err != nil {
		return 0, err
	}

	bet, stake, err := s.bet(ctx, lines)
	if err != nil {
		return 0, err
	}
	s.prompt.Printf("You are betting $%d on %d lines. Total bet: $%d.\n", bet, lines, stake)

	res, err := s.serv.Spin(ctx, model.LineSpin{Lines: lines, Bet: bet})
	if err != nil {
		return 0, fmt.Errorf("spin: %w", err)
	}
	s.rounds++

	PrintGrid(s.prompt.out, res.Grid)
	s.prompt.Printf("You won $%d.\n", res.Winnings)
	if len(res.WinningLines) > 0 {
		s.prompt.Println("You won on lines:", formatLines(res.WinningLines))
	} else {
		s.prompt.Println("You won on lines:")
	}

	s.logger.Debug("round finished",
		zap.String("round_id", res.RoundID),
		zap.Int("round", s.rounds),
		zap.Int("stake", res.Stake),
		zap.Int("winnings", res.Winnings),
		zap.Int("balance_before", s.balance),
		zap.Int("balance_after", s.balance+res.Net()),
	)
	return res.Net(), nil
}

// lines Запрос количества линий. Если баланса не хватает даже на минимальную
// ставку по всем линиям, количество линий спрашивается заново
func (s *SlotSession) lines(ctx context.Context) (int, error) {
	maxLines := s.cfg.MaxLines()
	for {
		lines, err := askUntilValid(ctx, s.prompt,
			fmt.Sprintf("How many lines would you like to bet on? (1-%d)? ", maxLines),
			func(in string) (int, error) { return ParseLines(in, maxLines) },
			func(error) string { return "Please enter a valid number of lines." },
		)
		if err != nil {
			return 0, err
		}

		if _, err := CheckStake(s.cfg.MinBet(), lines, s.balance); err != nil {
			s.prompt.Printf("You can't cover %d lines with a balance of $%d. Choose fewer lines.\n", lines, s.balance)
			continue
		}
		return lines, nil
	}
}

// bet Запрос ставки на линию. Если общая ставка больше баланса -
// переспрашивается только ставка, количество линий остается
func (s *SlotSession) bet(ctx context.Context, lines int) (int, int, error) {
	minBet, maxBet := s.cfg.MinBet(), s.cfg.MaxBet()
	for {
		bet, err := askUntilValid(ctx, s.prompt,
			fmt.Sprintf("What would you like to bet on each line? $%d-$%d ", minBet, maxBet),
			func(in string) (int, error) { return ParseBet(in, minBet, maxBet) },
			func(error) string {
				return fmt.Sprintf("Please enter a valid bet amount between $%d and $%d.", minBet, maxBet)
			},
		)
		if err != nil {
			return 0, 0, err
		}

		stake, err := CheckStake(bet, lines, s.balance)
		if err != nil {
			s.prompt.Printf("You don't have enough money to place this bet. Your balance is $%d.\n", s.balance)
			continue
		}
		return bet, stake, nil
	}
}

func (s *SlotSession) finish() {
	s.prompt.Printf("You left with $%d\n", s.balance)

	stats := s.serv.Stats()
	if s.rounds > 0 {
		s.prompt.Printf("Spins: %d, winning spins: %d, biggest win: $%d, RTP: %s%%\n",
			stats.TotalSpins, stats.WinningSpins, stats.BiggestWin, stats.RTP.StringFixed(2))
	}
	s.logger.Info("session finished",
		zap.Int("rounds", s.rounds),
		zap.Int("balance", s.balance),
		zap.Int("total_stake", stats.TotalStake),
		zap.Int("total_payout", stats.TotalPayout),
	)
}
