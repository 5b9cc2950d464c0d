// Package broker defines the order payload the upstream brokerage accepts and
// the adapter boundary the rest of the service talks through.
package broker

import (
	"context"

	"aura-gateway/internal/model"
	"aura-gateway/internal/types"
)

// StopLoss is the contingent leg of a bracket (one-triggers-other) order.
type StopLoss struct {
	StopPrice string `json:"stop_price"`
}

// OrderRequest is the wire payload for the broker order endpoint. Prices and
// quantities are transmitted as strings, matching the upstream schema. Qty and
// Notional are mutually exclusive.
type OrderRequest struct {
	ClientOrderID string            `json:"client_order_id,omitempty"`
	Symbol        string            `json:"symbol"`
	Side          types.OrderSide   `json:"side"`
	Type          types.OrderType   `json:"type"`
	TimeInForce   types.TimeInForce `json:"time_in_force"`
	Qty           string            `json:"qty,omitempty"`
	Notional      string            `json:"notional,omitempty"`
	LimitPrice    string            `json:"limit_price,omitempty"`
	StopPrice     string            `json:"stop_price,omitempty"`
	OrderClass    string            `json:"order_class,omitempty"`
	StopLoss      *StopLoss         `json:"stop_loss,omitempty"`
}

// OrderResponse is the accepted-order acknowledgement. FilledAvgPrice is 0
// when the broker has not filled anything yet.
type OrderResponse struct {
	ID             string
	Status         string
	FilledAvgPrice float64
}

type Adapter interface {
	Account(ctx context.Context) (model.AccountSummary, error)
	Positions(ctx context.Context) ([]model.Position, error)
	PlaceOrder(ctx context.Context, req OrderRequest) (OrderResponse, error)
}
