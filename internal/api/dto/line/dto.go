package line

type SpinRequest struct {
	Lines int `json:"lines"` // Количество линий, 1..max_lines
	Bet   int `json:"bet"`   // Ставка на одну линию
}

type SpinResponse struct {
	RoundID      string     `json:"round_id"`
	Grid         [][]string `json:"grid"`          // Поле по колонкам: grid[колонка][строка]
	Lines        int        `json:"lines"`         // Сыгранные линии
	Bet          int        `json:"bet"`           // Ставка на линию
	Stake        int        `json:"stake"`         // Общая ставка
	LineWins     []LineWin  `json:"line_wins"`     // Выигрышные линии
	WinningLines []int      `json:"winning_lines"` // Номера выигрышных линий
	Winnings     int        `json:"winnings"`      // Общая выплата
}

type LineWin struct {
	Line   int    `json:"line"`   // Номер линии с 1
	Symbol string `json:"symbol"` // Символ линии
	Payout int    `json:"payout"` // Выплата
}

type Symbol struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Payout int    `json:"payout"`
}

type ConfigResponse struct {
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	MaxLines int      `json:"max_lines"`
	MinBet   int      `json:"min_bet"`
	MaxBet   int      `json:"max_bet"`
	Symbols  []Symbol `json:"symbols"`
}

type StatsResponse struct {
	TotalSpins   int    `json:"total_spins"`
	WinningSpins int    `json:"winning_spins"`
	TotalStake   int    `json:"total_stake"`
	TotalPayout  int    `json:"total_payout"`
	BiggestWin   int    `json:"biggest_win"`
	Profit       int    `json:"profit"`     // Ставки минус выплаты
	RTP          string `json:"rtp"`        // Процент, 2 знака
	WindowRTP    string `json:"window_rtp"` // RTP последних window_size спинов
	WindowSize   int    `json:"window_size"`
}
