package line_state_repo

import (
	"casino_console/internal/model"
	repoModel "casino_console/internal/repository/line_state_repo/model"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	// defaultWindowSize Размер окна последних спинов для RTP
	defaultWindowSize = 500
	// rtpPrecision Знаков после запятой в RTP
	rtpPrecision = 2
)

// Реализация репозитория для хранения статистики автомата
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.CasinoState
}

// NewLineStatsRepository Конструктор для создания нового репозитория с начальным состоянием.
// windowSize <= 0 означает размер окна по умолчанию
func NewLineStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: repoModel.CasinoState{
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// UpdateState Обновление статистики после спина
func (r *StateRepo) UpdateState(stake, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalStake += stake
	r.state.TotalPayout += payout
	if payout > 0 {
		r.state.WinningSpins++
	}
	if payout > r.state.BiggestWin {
		r.state.BiggestWin = payout
	}

	// Добавляем спин в окно и поддерживаем его размер
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Stake:  stake,
		Payout: payout,
	})
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}
}

// Snapshot Копия текущей статистики с посчитанным RTP
func (r *StateRepo) Snapshot() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var windowStake, windowPayout int
	for _, spin := range r.state.SpinWindow {
		windowStake += spin.Stake
		windowPayout += spin.Payout
	}

	return model.Stats{
		TotalSpins:   r.state.TotalSpins,
		WinningSpins: r.state.WinningSpins,
		TotalStake:   r.state.TotalStake,
		TotalPayout:  r.state.TotalPayout,
		BiggestWin:   r.state.BiggestWin,
		RTP:          rtp(r.state.TotalPayout, r.state.TotalStake),
		WindowRTP:    rtp(windowPayout, windowStake),
		WindowSize:   r.state.WindowSize,
	}
}

// Reset Сброс статистики
func (r *StateRepo) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state = repoModel.CasinoState{
		SpinWindow: make([]repoModel.SpinResult, 0, r.state.WindowSize),
		WindowSize: r.state.WindowSize,
	}
}

// rtp = payout/stake*100, при нулевой ставке 0
func rtp(payout, stake int) decimal.Decimal {
	if stake <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(payout)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(stake))).
		Round(rtpPrecision)
}
