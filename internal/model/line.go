package model

// Symbol - метка символа на барабане
type Symbol string

// SymbolInfo - символ вместе с его весом в пуле и множителем выплаты
type SymbolInfo struct {
	Symbol Symbol
	Weight int
	Payout int
}

// Grid - игровое поле, индексируется как grid[колонка][строка]
type Grid [][]Symbol

// Rows возвращает количество строк (0 для пустого поля)
func (g Grid) Rows() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Row возвращает символы строки row слева направо
func (g Grid) Row(row int) []Symbol {
	symbols := make([]Symbol, len(g))
	for c, column := range g {
		symbols[c] = column[row]
	}
	return symbols
}

type LineSpin struct {
	Lines int // Количество линий
	Bet   int // Ставка на одну линию
}

// Stake - общая сумма ставки за спин
func (s LineSpin) Stake() int {
	return s.Lines * s.Bet
}

type SpinResult struct {
	RoundID      string
	Grid         Grid
	Lines        int
	Bet          int
	Stake        int
	LineWins     []LineWin
	WinningLines []int
	Winnings     int
}

// Net - чистый результат раунда для баланса
func (r SpinResult) Net() int {
	return r.Winnings - r.Stake
}

type LineWin struct {
	Line   int
	Symbol Symbol
	Payout int
}
