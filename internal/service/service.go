package service

import (
	"casino_console/internal/config"
	"casino_console/internal/model"
	"context"
)

type LineService interface {
	Spin(ctx context.Context, spinReq model.LineSpin) (*model.SpinResult, error)
	ValidateSpin(spinReq model.LineSpin) error
	Config() config.SlotConfig
	Stats() model.Stats
	ResetStats()
}
