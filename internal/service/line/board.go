package line

import (
	"casino_console/internal/model"
	"math/rand"
)

// GenerateBoard генерирует игровое поле cols x rows.
// Для каждой колонки заново собирается пул из weight копий каждого символа,
// и из него без возвращения тянутся rows символов. Вызывающий гарантирует,
// что rows не больше суммы весов
func GenerateBoard(rows, cols int, symbols []model.SymbolInfo, rng *rand.Rand) model.Grid {
	pool := make([]model.Symbol, 0, totalWeight(symbols))
	for _, s := range symbols {
		for i := 0; i < s.Weight; i++ {
			pool = append(pool, s.Symbol)
		}
	}

	board := make(model.Grid, cols)
	current := make([]model.Symbol, len(pool))
	for c := 0; c < cols; c++ {
		copy(current, pool)
		left := len(current)

		column := make([]model.Symbol, rows)
		for r := 0; r < rows; r++ {
			i := rng.Intn(left)
			column[r] = current[i]
			// Убираем вытянутый символ из пула
			left--
			current[i] = current[left]
		}
		board[c] = column
	}
	return board
}

func totalWeight(symbols []model.SymbolInfo) int {
	total := 0
	for _, s := range symbols {
		total += s.Weight
	}
	return total
}
