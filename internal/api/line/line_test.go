package line

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "casino_console/internal/api/dto/line"
	"casino_console/internal/config/env"
	"casino_console/internal/repository/line_state_repo"
	lineServ "casino_console/internal/service/line"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	serv := lineServ.NewLineService(
		env.NewDefaultSlotConfig(),
		line_state_repo.NewLineStatsRepository(0),
		rand.New(rand.NewSource(1)),
		nil,
	)
	return NewHandler(HandlerDeps{Serv: serv})
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestSpin(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.Spin(rec, httptest.NewRequest(http.MethodPost, "/line/spin", strings.NewReader(`{"lines":3,"bet":10}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	res := decode[dto.SpinResponse](t, rec)
	assert.True(t, strings.HasPrefix(res.RoundID, "round_"))
	assert.Equal(t, 30, res.Stake)
	assert.Len(t, res.Grid, 3)
	for _, column := range res.Grid {
		assert.Len(t, column, 3)
	}
	assert.NotNil(t, res.WinningLines)
	assert.Len(t, res.LineWins, len(res.WinningLines))

	total := 0
	for _, w := range res.LineWins {
		total += w.Payout
	}
	assert.Equal(t, total, res.Winnings)

	rec = httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/line/stats", nil))
	stats := decode[dto.StatsResponse](t, rec)
	assert.Equal(t, 1, stats.TotalSpins)
	assert.Equal(t, 30, stats.TotalStake)
	assert.Equal(t, res.Winnings, stats.TotalPayout)
}

func TestSpinBadRequest(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"lines":`},
		{"zero lines", `{"lines":0,"bet":10}`},
		{"too many lines", `{"lines":4,"bet":10}`},
		{"bet above max", `{"lines":1,"bet":1000}`},
		{"zero bet", `{"lines":1,"bet":0}`},
	}

	h := newTestHandler()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Spin(rec, httptest.NewRequest(http.MethodPost, "/line/spin", strings.NewReader(tc.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode[map[string]string](t, rec)["error"])
		})
	}
}

func TestConfig(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().Config(rec, httptest.NewRequest(http.MethodGet, "/line/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cfg := decode[dto.ConfigResponse](t, rec)
	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 3, cfg.MaxLines)
	assert.Equal(t, 1, cfg.MinBet)
	assert.Equal(t, 100, cfg.MaxBet)
	assert.Equal(t, dto.Symbol{Name: "A", Weight: 2, Payout: 5}, cfg.Symbols[0])
}

func TestResetStats(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.Spin(rec, httptest.NewRequest(http.MethodPost, "/line/spin", strings.NewReader(`{"lines":1,"bet":1}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ResetStats(rec, httptest.NewRequest(http.MethodDelete, "/line/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[dto.StatsResponse](t, rec).TotalSpins)
}

func TestStatsEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().Stats(rec, httptest.NewRequest(http.MethodGet, "/line/stats", nil))

	stats := decode[dto.StatsResponse](t, rec)
	assert.Equal(t, 0, stats.TotalSpins)
	assert.Equal(t, "0.00", stats.RTP)
	assert.Equal(t, 500, stats.WindowSize)
}
