// Package marketdata maps client periods onto broker timeframes and reshapes
// broker bar/snapshot envelopes into the client-facing schema.
package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"aura-gateway/internal/alpaca"
	"aura-gateway/internal/model"
	"aura-gateway/internal/symbols"
	"aura-gateway/internal/types"
)

// maxBars caps how many bars a single query returns, newest kept.
const maxBars = 1000

// InvalidPeriodError is returned for a period outside the fixed enumeration.
// The HTTP layer maps it to a 400.
type InvalidPeriodError struct {
	Period string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("Invalid period '%s'. Must be one of: 1D, 1W, 1M, 3M, 1Y", e.Period)
}

type periodSpec struct {
	Timeframe string
	Lookback  time.Duration
}

var periodSpecs = map[types.Period]periodSpec{
	types.Period1D: {"5Min", 24 * time.Hour},
	types.Period1W: {"15Min", 7 * 24 * time.Hour},
	types.Period1M: {"1Day", 30 * 24 * time.Hour},
	types.Period3M: {"1Day", 90 * 24 * time.Hour},
	types.Period1Y: {"1Week", 365 * 24 * time.Hour},
}

// DataSource is the slice of the data API this formatter consumes.
type DataSource interface {
	Bars(ctx context.Context, symbol string, crypto bool, timeframe string, start time.Time, limit int) ([]model.Bar, error)
	Snapshot(ctx context.Context, symbol string, crypto bool) (alpaca.Snapshot, error)
}

type Service struct {
	data DataSource
}

func NewService(data DataSource) *Service {
	return &Service{data: data}
}

// Bars returns chronological OHLCV bars for ticker over period.
func (s *Service) Bars(ctx context.Context, ticker string, period types.Period) ([]model.Bar, error) {
	spec, ok := periodSpecs[period]
	if !ok {
		return nil, &InvalidPeriodError{Period: string(period)}
	}
	symbol, crypto := symbols.Resolve(ticker)
	start := time.Now().UTC().Add(-spec.Lookback)
	return s.data.Bars(ctx, symbol, crypto, spec.Timeframe, start, maxBars)
}

// Quote returns the latest trade price with change against the previous
// session close. Both change figures are 0 when no previous close exists.
func (s *Service) Quote(ctx context.Context, ticker string) (model.Quote, error) {
	symbol, crypto := symbols.Resolve(ticker)
	snap, err := s.data.Snapshot(ctx, symbol, crypto)
	if err != nil {
		return model.Quote{}, err
	}
	var change, changePct float64
	if snap.PrevClose != 0 {
		price := decimal.NewFromFloat(snap.LastPrice)
		prev := decimal.NewFromFloat(snap.PrevClose)
		diff := price.Sub(prev)
		change = diff.Round(2).InexactFloat64()
		changePct = diff.Div(prev).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return model.Quote{
		Ticker:        symbol,
		Price:         snap.LastPrice,
		Change:        change,
		ChangePercent: changePct,
		Volume:        snap.DayVolume,
	}, nil
}
