package line

import (
	"casino_console/internal/config"
	"casino_console/internal/model"
	"casino_console/internal/repository"
	"casino_console/internal/service"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

type serv struct {
	cfg           config.SlotConfig
	lineStatsRepo repository.LineStatsRepository
	logger        *zap.Logger

	// rand.Rand не потокобезопасен, а HTTP режим крутит спины параллельно
	rngMtx sync.Mutex
	rng    *rand.Rand
}

// NewLineService Создать новый линейный слот по конфигурации.
// rng == nil - источник случайности, засеянный текущим временем
func NewLineService(
	cfg config.SlotConfig,
	lineStatsRepo repository.LineStatsRepository,
	rng *rand.Rand,
	logger *zap.Logger,
) service.LineService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{
		cfg:           cfg,
		lineStatsRepo: lineStatsRepo,
		logger:        logger,
		rng:           rng,
	}
}

func (s *serv) Config() config.SlotConfig {
	return s.cfg
}

func (s *serv) Stats() model.Stats {
	return s.lineStatsRepo.Snapshot()
}

func (s *serv) ResetStats() {
	s.lineStatsRepo.Reset()
	s.logger.Info("stats reset")
}
