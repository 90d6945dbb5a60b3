package env

import (
	"casino_console/internal/config"
	"casino_console/internal/model"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	slotConfigEnvName = "SLOT_CONFIG"

	// maxRoundPayout Наибольший выигрыш одного раунда: max_lines * max_bet * max payout
	maxRoundPayout = 1_000_000_000
)

var (
	ErrInvalidSlotConfig = errors.New("invalid slot config")
)

type symbolYAML struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
	Payout int    `yaml:"payout"`
}

type slotYAML struct {
	Rows     int          `yaml:"rows"`
	Cols     int          `yaml:"cols"`
	MaxLines int          `yaml:"max_lines"`
	MinBet   int          `yaml:"min_bet"`
	MaxBet   int          `yaml:"max_bet"`
	Symbols  []symbolYAML `yaml:"symbols"`
}

// defaultSlot - классический автомат 3x3 с четырьмя символами
var defaultSlot = slotYAML{
	Rows:     3,
	Cols:     3,
	MaxLines: 3,
	MinBet:   1,
	MaxBet:   100,
	Symbols: []symbolYAML{
		{Name: "A", Weight: 2, Payout: 5},
		{Name: "B", Weight: 4, Payout: 4},
		{Name: "C", Weight: 6, Payout: 3},
		{Name: "D", Weight: 8, Payout: 2},
	},
}

type slotConfig struct {
	rows     int
	cols     int
	maxLines int
	minBet   int
	maxBet   int
	symbols  []model.SymbolInfo
}

// NewDefaultSlotConfig - конфигурация автомата по умолчанию
func NewDefaultSlotConfig() config.SlotConfig {
	cfg, err := newSlotConfig(defaultSlot)
	if err != nil {
		panic("default slot config is invalid: " + err.Error())
	}
	return cfg
}

// NewSlotConfigFromYAML - читает таблицу символов из YAML файла.
// Если путь пустой, берется из SLOT_CONFIG, а если и там пусто - конфигурация по умолчанию
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	if len(path) == 0 {
		path = os.Getenv(slotConfigEnvName)
	}
	if len(path) == 0 {
		return NewDefaultSlotConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slot config %q: %w", path, err)
	}

	return ParseSlotConfig(data)
}

// ParseSlotConfig - разбирает и валидирует YAML с настройками автомата
func ParseSlotConfig(data []byte) (config.SlotConfig, error) {
	var raw slotYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse slot config: %w", err)
	}
	return newSlotConfig(raw)
}

func newSlotConfig(raw slotYAML) (*slotConfig, error) {
	if err := validateSlot(raw); err != nil {
		return nil, err
	}

	symbols := make([]model.SymbolInfo, len(raw.Symbols))
	for i, s := range raw.Symbols {
		symbols[i] = model.SymbolInfo{
			Symbol: model.Symbol(s.Name),
			Weight: s.Weight,
			Payout: s.Payout,
		}
	}

	return &slotConfig{
		rows:     raw.Rows,
		cols:     raw.Cols,
		maxLines: raw.MaxLines,
		minBet:   raw.MinBet,
		maxBet:   raw.MaxBet,
		symbols:  symbols,
	}, nil
}

func validateSlot(raw slotYAML) error {
	if raw.Rows < 1 || raw.Cols < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidSlotConfig, raw.Rows, raw.Cols)
	}
	if raw.MaxLines < 1 || raw.MaxLines > raw.Rows {
		return fmt.Errorf("%w: max_lines must be in [1, %d], got %d", ErrInvalidSlotConfig, raw.Rows, raw.MaxLines)
	}
	if raw.MinBet < 1 || raw.MinBet > raw.MaxBet {
		return fmt.Errorf("%w: bet bounds [%d, %d] are invalid", ErrInvalidSlotConfig, raw.MinBet, raw.MaxBet)
	}
	if len(raw.Symbols) == 0 {
		return fmt.Errorf("%w: no symbols", ErrInvalidSlotConfig)
	}

	seen := make(map[string]struct{}, len(raw.Symbols))
	totalWeight, maxPayout := 0, 0
	for _, s := range raw.Symbols {
		if len(s.Name) == 0 {
			return fmt.Errorf("%w: symbol without name", ErrInvalidSlotConfig)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidSlotConfig, s.Name)
		}
		seen[s.Name] = struct{}{}

		if s.Weight < 1 {
			return fmt.Errorf("%w: symbol %q weight must be positive", ErrInvalidSlotConfig, s.Name)
		}
		if s.Payout < 0 {
			return fmt.Errorf("%w: symbol %q payout must not be negative", ErrInvalidSlotConfig, s.Name)
		}
		totalWeight += s.Weight
		maxPayout = max(maxPayout, s.Payout)
	}

	if maxPayout > 0 && raw.MaxBet > maxRoundPayout/raw.MaxLines/maxPayout {
		return fmt.Errorf("%w: max_lines * max_bet * payout %d exceeds %d", ErrInvalidSlotConfig, maxPayout, maxRoundPayout)
	}

	// Колонка тянется без возвращения, поэтому пул должен вмещать все строки
	if raw.Rows > totalWeight {
		return fmt.Errorf("%w: %d rows exceed symbol pool of %d", ErrInvalidSlotConfig, raw.Rows, totalWeight)
	}
	return nil
}

func (cfg *slotConfig) Rows() int {
	return cfg.rows
}

func (cfg *slotConfig) Cols() int {
	return cfg.cols
}

func (cfg *slotConfig) MaxLines() int {
	return cfg.maxLines
}

func (cfg *slotConfig) MinBet() int {
	return cfg.minBet
}

func (cfg *slotConfig) MaxBet() int {
	return cfg.maxBet
}

// Symbols возвращает копию списка символов в порядке объявления
func (cfg *slotConfig) Symbols() []model.SymbolInfo {
	return append([]model.SymbolInfo(nil), cfg.symbols...)
}

func (cfg *slotConfig) PayoutTable() map[model.Symbol]int {
	payouts := make(map[model.Symbol]int, len(cfg.symbols))
	for _, s := range cfg.symbols {
		payouts[s.Symbol] = s.Payout
	}
	return payouts
}
