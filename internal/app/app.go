package app

import (
	"casino_console/internal/api/console"
	"casino_console/internal/config"
	"casino_console/internal/model"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	GuessModePlayer   = "player"
	GuessModeComputer = "computer"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

var (
	ErrUnknownGuessMode = errors.New("unknown guess mode")
	ErrInvalidSpinCount = errors.New("spin count must be positive")
)

type Options struct {
	Name           string     // Имя приложения в логах и файлах логов
	EnvFile        string     // .env файл, отсутствие не ошибка
	SlotConfigPath string     // YAML с таблицей символов, пусто - SLOT_CONFIG или по умолчанию
	Rand           *rand.Rand // nil - засеять временем
}

type App struct {
	ServiceProvider *ServiceProvider
	opts            Options
}

func NewApp(opts Options) *App {
	return &App{opts: opts}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.opts.Name, s.opts.SlotConfigPath, s.opts.Rand)
}

// Init Загружает .env и конфигурации. Вызывается перед любым режимом
func (s *App) Init() error {
	var envErr error
	if s.opts.EnvFile != "" {
		envErr = config.Load(s.opts.EnvFile)
	}
	s.initServiceProvider()

	if err := s.ServiceProvider.initConfigs(); err != nil {
		return err
	}

	logger := s.ServiceProvider.Logger()
	switch {
	case envErr == nil:
	case errors.Is(envErr, fs.ErrNotExist):
		logger.Debug("env file not found", zap.String("path", s.opts.EnvFile))
	default:
		logger.Warn("error loading env file", zap.String("path", s.opts.EnvFile), zap.Error(envErr))
	}

	cfg := s.ServiceProvider.SlotCfg()
	logger.Info("slot config loaded",
		zap.Int("rows", cfg.Rows()),
		zap.Int("cols", cfg.Cols()),
		zap.Int("max_lines", cfg.MaxLines()),
		zap.Int("min_bet", cfg.MinBet()),
		zap.Int("max_bet", cfg.MaxBet()),
	)
	return nil
}

func (s *App) Close() {
	if s.ServiceProvider != nil && s.ServiceProvider.logger != nil {
		_ = s.ServiceProvider.logger.Sync()
	}
}

// Run Консольная игра на автомате
func (s *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	session := console.NewSlotSession(in, out, s.ServiceProvider.LineService(), s.ServiceProvider.Logger())
	_, err := session.Run(ctx)
	return err
}

// Serve HTTP API до SIGINT/SIGTERM с мягкой остановкой сервера
func (s *App) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := s.ServiceProvider.Logger()
	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Simulate Прогоняет n спинов на максимуме линий и минимальной ставке и печатает статистику
func (s *App) Simulate(ctx context.Context, n int, out io.Writer) (model.Stats, error) {
	if n < 1 {
		return model.Stats{}, fmt.Errorf("%w: %d", ErrInvalidSpinCount, n)
	}

	serv := s.ServiceProvider.LineService()
	cfg := serv.Config()
	spin := model.LineSpin{Lines: cfg.MaxLines(), Bet: cfg.MinBet()}

	for i := 0; i < n; i++ {
		if _, err := serv.Spin(ctx, spin); err != nil {
			return serv.Stats(), fmt.Errorf("spin %d: %w", i+1, err)
		}
	}

	stats := serv.Stats()
	fmt.Fprintf(out, "Spins: %d (lines %d, bet $%d)\n", stats.TotalSpins, spin.Lines, spin.Bet)
	fmt.Fprintf(out, "Winning spins: %d\n", stats.WinningSpins)
	fmt.Fprintf(out, "Total stake: $%d\n", stats.TotalStake)
	fmt.Fprintf(out, "Total payout: $%d\n", stats.TotalPayout)
	fmt.Fprintf(out, "Biggest win: $%d\n", stats.BiggestWin)
	fmt.Fprintf(out, "RTP: %s%%\n", stats.RTP.StringFixed(2))
	fmt.Fprintf(out, "RTP over last %d spins: %s%%\n", stats.WindowSize, stats.WindowRTP.StringFixed(2))

	s.ServiceProvider.Logger().Info("simulation finished",
		zap.Int("spins", stats.TotalSpins),
		zap.Int("total_stake", stats.TotalStake),
		zap.Int("total_payout", stats.TotalPayout),
		zap.String("rtp", stats.RTP.String()),
	)
	return stats, nil
}

// Guess Игра в угадывание числа: mode player - угадывает игрок, computer - компьютер
func (s *App) Guess(ctx context.Context, mode string, upper int, in io.Reader, out io.Writer) error {
	logger := s.ServiceProvider.Logger().With(zap.String("session_id", model.GenerateSessionID()))

	switch mode {
	case GuessModePlayer:
		_, err := console.NewGuessSession(in, out, upper, s.newRand(), logger).Run(ctx)
		return err
	case GuessModeComputer:
		_, err := console.NewComputerGuessSession(in, out, upper, s.newRand(), logger).Run(ctx)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGuessMode, mode)
	}
}

func (s *App) newRand() *rand.Rand {
	if s.opts.Rand != nil {
		return s.opts.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
