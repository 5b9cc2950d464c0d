package orders

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aura-gateway/internal/broker"
	"aura-gateway/internal/symbols"
	"aura-gateway/internal/types"
)

// TradeParams are the validated inputs to an order submission. Exactly one of
// Qty and Notional must be set; Notional wins if a caller supplies both.
type TradeParams struct {
	Ticker     string
	Side       types.OrderSide
	Type       types.OrderType
	Qty        *float64
	Notional   *float64
	LimitPrice *float64
	StopPrice  *float64
	StopLoss   *float64
}

// buildOrder turns trade parameters into a broker order payload. Crypto
// orders always use gtc; equity orders always use day, since fractional
// equity orders are only accepted with day validity. A stop-loss wraps the
// order as an oto bracket, except for crypto where the broker does not
// support brackets and the stop-loss is dropped.
func buildOrder(p TradeParams) broker.OrderRequest {
	symbol, crypto := symbols.Resolve(p.Ticker)
	tif := types.TimeInForceDay
	if crypto {
		tif = types.TimeInForceGTC
	}
	req := broker.OrderRequest{
		ClientOrderID: uuid.NewString(),
		Symbol:        symbol,
		Side:          p.Side,
		Type:          p.Type,
		TimeInForce:   tif,
	}
	if p.Notional != nil {
		req.Notional = decimal.NewFromFloat(*p.Notional).Round(2).String()
	} else if p.Qty != nil {
		req.Qty = formatNumber(*p.Qty)
	}
	if (p.Type == types.OrderTypeLimit || p.Type == types.OrderTypeStopLimit) && p.LimitPrice != nil {
		req.LimitPrice = formatNumber(*p.LimitPrice)
	}
	if (p.Type == types.OrderTypeStop || p.Type == types.OrderTypeStopLimit) && p.StopPrice != nil {
		req.StopPrice = formatNumber(*p.StopPrice)
	}
	if p.StopLoss != nil && !crypto {
		req.OrderClass = "oto"
		req.StopLoss = &broker.StopLoss{StopPrice: formatNumber(*p.StopLoss)}
	}
	return req
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
