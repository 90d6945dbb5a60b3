package converter

import (
	"casino_console/internal/api/dto/line"
	"casino_console/internal/config"
	"casino_console/internal/model"
)

func ToLineSpin(req line.SpinRequest) model.LineSpin {
	return model.LineSpin{
		Lines: req.Lines,
		Bet:   req.Bet,
	}
}

func ToSpinResponse(res model.SpinResult) line.SpinResponse {
	winningLines := res.WinningLines
	if winningLines == nil {
		winningLines = []int{}
	}
	return line.SpinResponse{
		RoundID:      res.RoundID,
		Grid:         toGrid(res.Grid),
		Lines:        res.Lines,
		Bet:          res.Bet,
		Stake:        res.Stake,
		LineWins:     toLineWins(res.LineWins),
		WinningLines: winningLines,
		Winnings:     res.Winnings,
	}
}

func toGrid(grid model.Grid) [][]string {
	result := make([][]string, len(grid))
	for c, column := range grid {
		result[c] = make([]string, len(column))
		for r, s := range column {
			result[c][r] = string(s)
		}
	}
	return result
}

func toLineWins(lineWins []model.LineWin) []line.LineWin {
	result := make([]line.LineWin, len(lineWins))
	for i, l := range lineWins {
		result[i] = line.LineWin{
			Line:   l.Line,
			Symbol: string(l.Symbol),
			Payout: l.Payout,
		}
	}
	return result
}

func ToConfigResponse(cfg config.SlotConfig) line.ConfigResponse {
	symbols := cfg.Symbols()
	result := make([]line.Symbol, len(symbols))
	for i, s := range symbols {
		result[i] = line.Symbol{
			Name:   string(s.Symbol),
			Weight: s.Weight,
			Payout: s.Payout,
		}
	}
	return line.ConfigResponse{
		Rows:     cfg.Rows(),
		Cols:     cfg.Cols(),
		MaxLines: cfg.MaxLines(),
		MinBet:   cfg.MinBet(),
		MaxBet:   cfg.MaxBet(),
		Symbols:  result,
	}
}

func ToStatsResponse(stats model.Stats) line.StatsResponse {
	return line.StatsResponse{
		TotalSpins:   stats.TotalSpins,
		WinningSpins: stats.WinningSpins,
		TotalStake:   stats.TotalStake,
		TotalPayout:  stats.TotalPayout,
		BiggestWin:   stats.BiggestWin,
		Profit:       stats.Profit(),
		RTP:          stats.RTP.StringFixed(2),
		WindowRTP:    stats.WindowRTP.StringFixed(2),
		WindowSize:   stats.WindowSize,
	}
}
