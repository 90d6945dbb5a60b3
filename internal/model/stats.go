package model

import "github.com/shopspring/decimal"

// Stats - снимок статистики спинов
type Stats struct {
	TotalSpins   int
	WinningSpins int
	TotalStake   int
	TotalPayout  int
	BiggestWin   int
	RTP          decimal.Decimal // TotalPayout/TotalStake*100
	WindowRTP    decimal.Decimal // RTP в окне последних спинов
	WindowSize   int
}

// Profit - выручка автомата (ставки минус выплаты)
func (s Stats) Profit() int {
	return s.TotalStake - s.TotalPayout
}
