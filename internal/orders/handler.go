package orders

import (
	"fmt"
	"net/http"
	"strings"

	"aura-gateway/internal/httputil"
	"aura-gateway/internal/types"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type tradeRequest struct {
	Ticker     string   `json:"ticker"`
	Qty        *float64 `json:"qty"`
	Side       string   `json:"side"`
	Type       string   `json:"type"`
	LimitPrice *float64 `json:"limit_price"`
	StopPrice  *float64 `json:"stop_price"`
	StopLoss   *float64 `json:"stop_loss"`
	Notional   *float64 `json:"notional"`
}

// Submit handles POST /api/trade.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: err.Error()})
		return
	}
	if strings.TrimSpace(req.Ticker) == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "ticker is required"})
		return
	}
	side := types.OrderSide(req.Side)
	if !side.Valid() {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "side must be buy or sell"})
		return
	}
	orderType := types.OrderType(req.Type)
	if !orderType.Valid() {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "type must be market, limit, stop or stop_limit"})
		return
	}
	if req.Qty != nil && *req.Qty <= 0 {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "qty must be greater than 0"})
		return
	}
	if req.Notional != nil && *req.Notional <= 0 {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "notional must be greater than 0"})
		return
	}
	if req.Qty != nil && req.Notional != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "qty and notional are mutually exclusive"})
		return
	}

	result := h.svc.Submit(r.Context(), TradeParams{
		Ticker:     req.Ticker,
		Side:       side,
		Type:       orderType,
		Qty:        req.Qty,
		Notional:   req.Notional,
		LimitPrice: req.LimitPrice,
		StopPrice:  req.StopPrice,
		StopLoss:   req.StopLoss,
	})
	if !result.Success {
		httputil.WriteJSON(w, http.StatusBadRequest, result)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// Get handles GET /api/trade?action=account|positions.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	switch action {
	case "account":
		acct, err := h.svc.Account(r.Context())
		if err != nil {
			httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{Error: err.Error()})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, acct)
	case "positions":
		positions, err := h.svc.Positions(r.Context())
		if err != nil {
			httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{Error: err.Error()})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, positions)
	default:
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: fmt.Sprintf("Unknown action '%s'. Use 'account' or 'positions'.", action),
		})
	}
}
