package health

import (
	"context"
	"net/http"
	"time"

	"aura-gateway/internal/broker"
	"aura-gateway/internal/httputil"
)

type Handler struct {
	broker    broker.Adapter
	startedAt time.Time
}

func NewHandler(b broker.Adapter, startedAt time.Time) *Handler {
	start := startedAt.UTC()
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &Handler{broker: b, startedAt: start}
}

type healthResponse struct {
	Status          string  `json:"status"`
	Timestamp       string  `json:"timestamp"`
	UptimeSec       int64   `json:"uptime_sec"`
	AlpacaConnected bool    `json:"alpaca_connected"`
	BuyingPower     float64 `json:"buying_power,omitempty"`
	Error           string  `json:"error,omitempty"`
}

// Get probes the broker account to verify connectivity. It always answers
// 200; a broken upstream is reported in the body, never as an HTTP failure.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	uptime := now.Sub(h.startedAt)
	if uptime < 0 {
		uptime = 0
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	acct, err := h.broker.Account(ctx)
	resp := healthResponse{
		Timestamp: now.Format(time.RFC3339),
		UptimeSec: int64(uptime.Seconds()),
	}
	if err != nil {
		resp.Status = "error"
		resp.AlpacaConnected = false
		resp.Error = err.Error()
	} else {
		resp.Status = "ok"
		resp.AlpacaConnected = true
		resp.BuyingPower = acct.BuyingPower
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
