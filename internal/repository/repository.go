package repository

import (
	"casino_console/internal/model"
)

type LineStatsRepository interface {
	UpdateState(stake, payout int)
	Snapshot() model.Stats
	Reset()
}
