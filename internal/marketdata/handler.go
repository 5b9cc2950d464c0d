package marketdata

import (
	"errors"
	"net/http"
	"strings"

	"aura-gateway/internal/httputil"
	"aura-gateway/internal/model"
	"aura-gateway/internal/types"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type barsResponse struct {
	Ticker string       `json:"ticker"`
	Period types.Period `json:"period"`
	Bars   []model.Bar  `json:"bars"`
}

// Get handles GET /api/market?ticker=...&action=bars|quote&period=...
// action defaults to bars, period to 1M.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ticker := strings.TrimSpace(r.URL.Query().Get("ticker"))
	if ticker == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Missing required parameter: ticker"})
		return
	}
	action := r.URL.Query().Get("action")
	if action == "" {
		action = "bars"
	}

	if action == "quote" {
		quote, err := h.svc.Quote(r.Context(), ticker)
		if err != nil {
			httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{Error: err.Error()})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, quote)
		return
	}

	period := types.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = types.Period1M
	}
	bars, err := h.svc.Bars(r.Context(), ticker, period)
	if err != nil {
		var invalid *InvalidPeriodError
		if errors.As(err, &invalid) {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: invalid.Error()})
			return
		}
		httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{Error: err.Error()})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, barsResponse{
		Ticker: strings.ToUpper(ticker),
		Period: period,
		Bars:   bars,
	})
}
