package app

import (
	lineAPI "casino_console/internal/api/line"
	"casino_console/internal/config"
	"casino_console/internal/config/env"
	"casino_console/internal/repository"
	"casino_console/internal/repository/line_state_repo"
	"casino_console/internal/service"
	"casino_console/internal/service/line"
	"casino_console/pkg/logger"
	"fmt"
	"math/rand"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	appName        string
	slotConfigPath string

	// Logging
	logCfg config.LogConfig
	logger *zap.Logger

	// Random source, nil - засеять временем
	rng *rand.Rand

	// Line bits
	slotCfg       config.SlotConfig
	lineStatsRepo repository.LineStatsRepository
	lineServ      service.LineService
	lineHand      *lineAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(appName, slotConfigPath string, rng *rand.Rand) *ServiceProvider {
	return &ServiceProvider{
		appName:        appName,
		slotConfigPath: slotConfigPath,
		rng:            rng,
	}
}

// initConfigs Читает все конфигурации заранее, чтобы ошибка дошла до main, а не упала паникой
func (sp *ServiceProvider) initConfigs() error {
	logCfg, err := env.NewLogConfig()
	if err != nil {
		return fmt.Errorf("failed to get log config: %w", err)
	}
	sp.logCfg = logCfg

	slotCfg, err := env.NewSlotConfigFromYAML(sp.slotConfigPath)
	if err != nil {
		return fmt.Errorf("failed to get slot config: %w", err)
	}
	sp.slotCfg = slotCfg

	httpCfg, err := env.NewHTTPConfig()
	if err != nil {
		return fmt.Errorf("failed to get http config: %w", err)
	}
	sp.httpCfg = httpCfg
	return nil
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		cfg := sp.LogCfg()
		sp.logger = logger.New(&logger.Config{
			Level: cfg.Level(),
			App:   sp.appName,
			Dir:   cfg.Dir(),
			File:  cfg.File(),
		})
	}
	return sp.logger
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML(sp.slotConfigPath)
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) LineStatsRepository() repository.LineStatsRepository {
	if sp.lineStatsRepo == nil {
		sp.lineStatsRepo = line_state_repo.NewLineStatsRepository(0)
	}
	return sp.lineStatsRepo
}

func (sp *ServiceProvider) LineService() service.LineService {
	if sp.lineServ == nil {
		sp.lineServ = line.NewLineService(sp.SlotCfg(), sp.LineStatsRepository(), sp.rng, sp.Logger())
	}
	return sp.lineServ
}

func (sp *ServiceProvider) LineHandler() *lineAPI.Handler {
	if sp.lineHand == nil {
		sp.lineHand = lineAPI.NewHandler(lineAPI.HandlerDeps{
			Serv:   sp.LineService(),
			Logger: sp.Logger(),
		})
	}
	return sp.lineHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Line endpoints
		lineHandler := sp.LineHandler()
		r.Route("/line", func(rr chi.Router) {
			rr.Post("/spin", lineHandler.Spin)
			rr.Get("/config", lineHandler.Config)
			rr.Get("/stats", lineHandler.Stats)
			rr.Delete("/stats", lineHandler.ResetStats)
		})

		r.Handle("/metrics", promhttp.Handler())

		sp.router = r
	}

	return sp.router
}
