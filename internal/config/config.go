package config

import (
	"casino_console/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type SlotConfig interface {
	Rows() int
	Cols() int
	MaxLines() int
	MinBet() int
	MaxBet() int
	Symbols() []model.SymbolInfo
	PayoutTable() map[model.Symbol]int
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
	Dir() string
	File() bool
}
