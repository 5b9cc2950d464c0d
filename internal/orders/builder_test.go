package orders

import (
	"testing"

	"aura-gateway/internal/types"
)

func fptr(v float64) *float64 { return &v }

func TestBuildOrderCryptoMarket(t *testing.T) {
	req := buildOrder(TradeParams{
		Ticker:   "BTC",
		Side:     types.OrderSideBuy,
		Type:     types.OrderTypeMarket,
		Qty:      fptr(0.01),
		StopLoss: fptr(50000),
	})
	if req.Symbol != "BTC/USD" {
		t.Errorf("symbol = %q, want BTC/USD", req.Symbol)
	}
	if req.TimeInForce != types.TimeInForceGTC {
		t.Errorf("time_in_force = %q, want gtc", req.TimeInForce)
	}
	if req.Qty != "0.01" {
		t.Errorf("qty = %q, want 0.01", req.Qty)
	}
	if req.StopLoss != nil || req.OrderClass != "" {
		t.Errorf("crypto order must drop the stop-loss leg, got class=%q leg=%v", req.OrderClass, req.StopLoss)
	}
	if req.ClientOrderID == "" {
		t.Error("client_order_id not set")
	}
}

func TestBuildOrderEquityBracket(t *testing.T) {
	req := buildOrder(TradeParams{
		Ticker:     "AAPL",
		Side:       types.OrderSideBuy,
		Type:       types.OrderTypeLimit,
		Qty:        fptr(2),
		LimitPrice: fptr(150),
		StopLoss:   fptr(140),
	})
	if req.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", req.Symbol)
	}
	if req.TimeInForce != types.TimeInForceDay {
		t.Errorf("time_in_force = %q, want day", req.TimeInForce)
	}
	if req.LimitPrice != "150" {
		t.Errorf("limit_price = %q, want 150", req.LimitPrice)
	}
	if req.OrderClass != "oto" {
		t.Errorf("order_class = %q, want oto", req.OrderClass)
	}
	if req.StopLoss == nil || req.StopLoss.StopPrice != "140" {
		t.Errorf("stop_loss leg = %v, want stop_price 140", req.StopLoss)
	}
}

func TestBuildOrderNotionalRounding(t *testing.T) {
	req := buildOrder(TradeParams{
		Ticker:   "AAPL",
		Side:     types.OrderSideBuy,
		Type:     types.OrderTypeMarket,
		Notional: fptr(30.005),
	})
	if req.Notional != "30.01" {
		t.Errorf("notional = %q, want 30.01", req.Notional)
	}
	if req.Qty != "" {
		t.Errorf("qty must be empty when notional is set, got %q", req.Qty)
	}
}

func TestBuildOrderPriceFieldsPerType(t *testing.T) {
	// Market orders carry neither price even if supplied.
	req := buildOrder(TradeParams{
		Ticker:     "AAPL",
		Side:       types.OrderSideSell,
		Type:       types.OrderTypeMarket,
		Qty:        fptr(1),
		LimitPrice: fptr(100),
		StopPrice:  fptr(90),
	})
	if req.LimitPrice != "" || req.StopPrice != "" {
		t.Errorf("market order carries prices: limit=%q stop=%q", req.LimitPrice, req.StopPrice)
	}

	req = buildOrder(TradeParams{
		Ticker:    "AAPL",
		Side:      types.OrderSideSell,
		Type:      types.OrderTypeStop,
		Qty:       fptr(1),
		StopPrice: fptr(90),
	})
	if req.StopPrice != "90" || req.LimitPrice != "" {
		t.Errorf("stop order: limit=%q stop=%q", req.LimitPrice, req.StopPrice)
	}

	req = buildOrder(TradeParams{
		Ticker:     "AAPL",
		Side:       types.OrderSideSell,
		Type:       types.OrderTypeStopLimit,
		Qty:        fptr(1),
		LimitPrice: fptr(95),
		StopPrice:  fptr(90),
	})
	if req.LimitPrice != "95" || req.StopPrice != "90" {
		t.Errorf("stop_limit order: limit=%q stop=%q", req.LimitPrice, req.StopPrice)
	}
}
