package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Имена метрик: slots_<name>

var (
	spins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slots_spins_total",
		Help: "Количество спинов",
	})
	winningSpins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slots_winning_spins_total",
		Help: "Количество выигрышных спинов",
	})
	stakeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slots_stake_total",
		Help: "Сумма ставок",
	})
	payoutTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slots_payout_total",
		Help: "Сумма выплат",
	})
	rejectedSpins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slots_rejected_spins_total",
		Help: "Отклоненные спины по причине",
	}, []string{"reason"})
)

// ObserveSpin - учитывает завершенный спин
func ObserveSpin(stake, payout int) {
	spins.Inc()
	stakeTotal.Add(float64(stake))
	payoutTotal.Add(float64(payout))
	if payout > 0 {
		winningSpins.Inc()
	}
}

// ObserveRejected - учитывает спин, отклоненный валидацией
func ObserveRejected(reason string) {
	rejectedSpins.WithLabelValues(reason).Inc()
}
