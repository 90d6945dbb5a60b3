package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"casino_console/internal/config"
	"casino_console/internal/config/env"
	"casino_console/internal/model"
	"casino_console/internal/repository/line_state_repo"
	"casino_console/internal/service/line"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLineService всегда выдает одно и то же поле
type stubLineService struct {
	cfg   config.SlotConfig
	grid  model.Grid
	repo  *line_state_repo.StateRepo
	spins []model.LineSpin
}

func newStub(grid model.Grid) *stubLineService {
	return &stubLineService{
		cfg:  env.NewDefaultSlotConfig(),
		grid: grid,
		repo: line_state_repo.NewLineStatsRepository(0),
	}
}

func (s *stubLineService) Spin(_ context.Context, spinReq model.LineSpin) (*model.SpinResult, error) {
	if err := s.ValidateSpin(spinReq); err != nil {
		return nil, err
	}
	s.spins = append(s.spins, spinReq)

	winnings, lines := line.CheckWin(s.grid, spinReq.Lines, spinReq.Bet, s.cfg.PayoutTable())
	s.repo.UpdateState(spinReq.Stake(), winnings)
	return &model.SpinResult{
		RoundID:      "round_test",
		Grid:         s.grid,
		Lines:        spinReq.Lines,
		Bet:          spinReq.Bet,
		Stake:        spinReq.Stake(),
		WinningLines: lines,
		Winnings:     winnings,
	}, nil
}

func (s *stubLineService) ValidateSpin(spinReq model.LineSpin) error {
	return line.NewLineService(s.cfg, s.repo, nil, nil).ValidateSpin(spinReq)
}

func (s *stubLineService) Config() config.SlotConfig {
	return s.cfg
}

func (s *stubLineService) Stats() model.Stats {
	return s.repo.Snapshot()
}

func (s *stubLineService) ResetStats() {
	s.repo.Reset()
}

// Строка 1 - AAA (x5), строка 2 без выигрыша, строка 3 - DDD (x2)
var winningGrid = model.Grid{
	{"A", "B", "D"},
	{"A", "C", "D"},
	{"A", "B", "D"},
}

var losingGrid = model.Grid{
	{"A", "B", "C"},
	{"B", "C", "D"},
	{"C", "D", "A"},
}

func runSlot(t *testing.T, stub *stubLineService, input string) (int, string) {
	t.Helper()

	var out bytes.Buffer
	session := NewSlotSession(strings.NewReader(input), &out, stub, nil)
	balance, err := session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Balance(), balance)
	return balance, out.String()
}

const depositHint = "Please enter a valid amount between $1 and $1000000000."

func TestSlotSessionDepositBound(t *testing.T) {
	balance, out := runSlot(t, newStub(winningGrid), "9223372036854775807\n1000000001\n1000000000\n\n1\n1\nq\n")

	assert.Equal(t, 2, strings.Count(out, depositHint))
	assert.Contains(t, out, "You won $5.")
	assert.Equal(t, 1_000_000_004, balance)
	assert.Contains(t, out, "You left with $1000000004")
}

func TestSlotSessionDepositRetries(t *testing.T) {
	balance, out := runSlot(t, newStub(winningGrid), "-5\nabc\n50\nq\n")

	assert.Equal(t, 50, balance)
	assert.Equal(t, 2, strings.Count(out, depositHint))
	assert.Contains(t, out, "Current balance is $50")
	assert.Contains(t, out, "You left with $50")
	assert.NotContains(t, out, "Spins:")
}

func TestSlotSessionWinningRound(t *testing.T) {
	stub := newStub(winningGrid)
	balance, out := runSlot(t, stub, "10\n\n3\n5\n3\nq\n")

	// Ставка 5x3 не покрывается балансом 10, переспрашивается только ставка
	assert.Equal(t, 1, strings.Count(out, "You don't have enough money to place this bet. Your balance is $10."))
	assert.Equal(t, 1, strings.Count(out, "How many lines would you like to bet on? (1-3)? "))
	assert.Contains(t, out, "You are betting $3 on 3 lines. Total bet: $9.")
	assert.Contains(t, out, "A | A | A\nB | C | B\nD | D | D\n")
	assert.Contains(t, out, "You won $21.")
	assert.Contains(t, out, "You won on lines: 1 3")

	// 10 - 9 + 3*5 + 3*2
	assert.Equal(t, 22, balance)
	assert.Contains(t, out, "Current balance is $22")
	assert.Contains(t, out, "You left with $22")
	assert.Contains(t, out, "Spins: 1, winning spins: 1, biggest win: $21, RTP: 233.33%")
	assert.Equal(t, []model.LineSpin{{Lines: 3, Bet: 3}}, stub.spins)
}

func TestSlotSessionOnlyChecksPlayedLines(t *testing.T) {
	balance, out := runSlot(t, newStub(winningGrid), "10\n\n2\n1\nq\n")

	// Линия 3 выиграла бы, но на нее не ставили
	assert.Contains(t, out, "You won $5.")
	assert.Contains(t, out, "You won on lines: 1\n")
	assert.Equal(t, 13, balance)
}

func TestSlotSessionRunsOutOfMoney(t *testing.T) {
	balance, out := runSlot(t, newStub(losingGrid), "3\n\n3\n1\n")

	assert.Equal(t, 0, balance)
	assert.Contains(t, out, "You won $0.")
	assert.Contains(t, out, "You won on lines:\n")
	assert.Contains(t, out, "You don't have enough money to keep playing. Minimum bet is $1.")
	assert.Contains(t, out, "You left with $0")
}

func TestSlotSessionLinesAboveBalance(t *testing.T) {
	stub := newStub(losingGrid)
	balance, out := runSlot(t, stub, "2\n\n3\n2\n1\nq\n")

	assert.Contains(t, out, "You can't cover 3 lines with a balance of $2. Choose fewer lines.")
	assert.Equal(t, []model.LineSpin{{Lines: 2, Bet: 1}}, stub.spins)
	assert.Equal(t, 0, balance)
}

func TestSlotSessionInvalidLinesAndBet(t *testing.T) {
	_, out := runSlot(t, newStub(losingGrid), "100\n\n0\n4\n1\n0\n101\n1\nq\n")

	assert.Equal(t, 2, strings.Count(out, "Please enter a valid number of lines."))
	assert.Equal(t, 2, strings.Count(out, "Please enter a valid bet amount between $1 and $100."))
	assert.Contains(t, out, "You left with $99")
}

func TestSlotSessionEndOfInput(t *testing.T) {
	t.Run("before deposit", func(t *testing.T) {
		balance, out := runSlot(t, newStub(winningGrid), "")
		assert.Equal(t, 0, balance)
		assert.Contains(t, out, "You left with $0")
	})

	t.Run("during bet", func(t *testing.T) {
		stub := newStub(winningGrid)
		balance, out := runSlot(t, stub, "10\n\n2\n")
		assert.Equal(t, 10, balance)
		assert.Contains(t, out, "You left with $10")
		assert.Empty(t, stub.spins)
	})
}

func TestSlotSessionLongInputLine(t *testing.T) {
	long := strings.Repeat("7", 70000)

	t.Run("deposit", func(t *testing.T) {
		balance, out := runSlot(t, newStub(winningGrid), long+"\n50\nq\n")
		assert.Equal(t, 50, balance)
		assert.Equal(t, 1, strings.Count(out, depositHint))
		assert.Contains(t, out, "You left with $50")
	})

	t.Run("play prompt", func(t *testing.T) {
		stub := newStub(winningGrid)
		balance, out := runSlot(t, stub, "50\n"+long+"\nq\n")
		assert.Equal(t, 50, balance)
		assert.Equal(t, 2, strings.Count(out, "Current balance is $50"))
		assert.Empty(t, stub.spins)
	})

	t.Run("bet", func(t *testing.T) {
		balance, out := runSlot(t, newStub(losingGrid), "50\n\n1\n"+long+"\n2\nq\n")
		assert.Equal(t, 1, strings.Count(out, "Please enter a valid bet amount between $1 and $100."))
		assert.Equal(t, 48, balance)
	})
}

func TestSlotSessionCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	session := NewSlotSession(strings.NewReader("10\n"), &out, newStub(winningGrid), nil)
	balance, err := session.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, balance)
	assert.NotEmpty(t, session.ID())
}
