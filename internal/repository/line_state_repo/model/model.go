package model

// Состояние автомата
type CasinoState struct {
	TotalSpins   int // Сколько всего спинов сделано
	WinningSpins int // Сколько спинов принесли выигрыш
	TotalStake   int // Сумма всех ставок
	TotalPayout  int // Сумма всех выплат
	BiggestWin   int // Самый крупный выигрыш за спин

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowSize int          // Размер окна для анализа RTP
}

// Результат спина для окна
type SpinResult struct {
	Stake  int
	Payout int
}
