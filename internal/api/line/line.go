package line

import (
	dto "casino_console/internal/api/dto/line"
	"casino_console/internal/converter"
	"casino_console/internal/service"
	lineServ "casino_console/internal/service/line"
	"casino_console/pkg/req"
	"casino_console/pkg/resp"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.LineService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.LineService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: logger}
}

// Spin Один спин без баланса: баланс ведет клиент
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToLineSpin(payload))
	if err != nil {
		if errors.Is(err, lineServ.ErrInvalidLines) || errors.Is(err, lineServ.ErrInvalidBet) {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("spin failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Config(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.serv.Config()))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// ResetStats Обнуляет статистику и возвращает пустой снимок
func (h *Handler) ResetStats(w http.ResponseWriter, _ *http.Request) {
	h.serv.ResetStats()
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
