package line

import (
	"casino_console/internal/model"
)

// EvaluateLines выполняет оценку первых lines строк поля.
// Линия выигрывает, если во всех колонках на этой строке стоит один и тот же символ.
// Возвращает выигрыши по линиям в порядке возрастания номера (нумерация с 1)
func EvaluateLines(board model.Grid, lines, bet int, payoutTable map[model.Symbol]int) []model.LineWin {
	if lines > board.Rows() {
		lines = board.Rows()
	}

	var wins []model.LineWin
	for line := 0; line < lines; line++ {
		symbol := board[0][line]

		matched := true
		for _, column := range board[1:] {
			if column[line] != symbol {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		wins = append(wins, model.LineWin{
			Line:   line + 1,
			Symbol: symbol,
			Payout: payoutTable[symbol] * bet,
		})
	}
	return wins
}

// CheckWin Сумма выигрыша и номера выигравших линий
func CheckWin(board model.Grid, lines, bet int, payoutTable map[model.Symbol]int) (int, []int) {
	return sumWins(EvaluateLines(board, lines, bet, payoutTable))
}

// sumWins Общая выплата и номера линий, срез линий не nil
func sumWins(wins []model.LineWin) (int, []int) {
	winnings := 0
	winningLines := make([]int, 0, len(wins))
	for _, w := range wins {
		winnings += w.Payout
		winningLines = append(winningLines, w.Line)
	}
	return winnings, winningLines
}
