package orders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"aura-gateway/internal/alpaca"
	"aura-gateway/internal/broker"
	"aura-gateway/internal/model"
	"aura-gateway/internal/types"
)

// Service validates trade parameters, checks buying power for buys and
// submits orders through the broker adapter. Every failure folds into the
// returned TradeResult; Submit never propagates an error to the caller.
type Service struct {
	broker broker.Adapter
}

func NewService(b broker.Adapter) *Service {
	return &Service{broker: b}
}

func (s *Service) Submit(ctx context.Context, p TradeParams) model.TradeResult {
	if p.Qty == nil && p.Notional == nil {
		return failure("Either qty or notional must be provided.")
	}
	if p.Notional != nil && p.Type != types.OrderTypeMarket {
		return failure("Notional (dollar amount) orders are only supported for market orders.")
	}

	if p.Side == types.OrderSideBuy {
		acct, err := s.broker.Account(ctx)
		if err != nil {
			return failure(errMessage(err))
		}
		estimated := estimateCost(p)
		if estimated.IsPositive() {
			available := decimal.NewFromFloat(acct.BuyingPower)
			if estimated.GreaterThan(available) {
				return failure(fmt.Sprintf(
					"Insufficient buying power. Required: $%s, Available: $%s",
					estimated.StringFixed(2), available.StringFixed(2)))
			}
		}
	}

	req := buildOrder(p)
	log.Printf("[submit_order] sending to broker: %s %s %s qty=%s notional=%s", req.Side, req.Type, req.Symbol, req.Qty, req.Notional)
	resp, err := s.broker.PlaceOrder(ctx, req)
	if err != nil {
		return failure(errMessage(err))
	}
	return model.TradeResult{
		Success:     true,
		OrderID:     resp.ID,
		Status:      resp.Status,
		FilledPrice: resp.FilledAvgPrice,
	}
}

func (s *Service) Account(ctx context.Context) (model.AccountSummary, error) {
	return s.broker.Account(ctx)
}

func (s *Service) Positions(ctx context.Context) ([]model.Position, error) {
	return s.broker.Positions(ctx)
}

// estimateCost is a best-effort pre-check figure. Market orders without a
// notional have no knowable cost ahead of fill; zero skips the check.
func estimateCost(p TradeParams) decimal.Decimal {
	if p.Type == types.OrderTypeLimit && p.LimitPrice != nil && p.Qty != nil {
		return decimal.NewFromFloat(*p.LimitPrice).Mul(decimal.NewFromFloat(*p.Qty))
	}
	if p.Notional != nil {
		return decimal.NewFromFloat(*p.Notional)
	}
	return decimal.Zero
}

func errMessage(err error) string {
	var apiErr *alpaca.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func failure(msg string) model.TradeResult {
	return model.TradeResult{Success: false, Error: msg}
}
