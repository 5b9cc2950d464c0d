// Package alpaca implements the brokerage REST clients: the trading API
// (account, positions, orders) and the market data API (bars, snapshots).
package alpaca

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"aura-gateway/internal/broker"
	"aura-gateway/internal/model"
)

// Client talks to the trading API and implements broker.Adapter.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, key, secret string, timeout time.Duration) *Client {
	httpc := resty.New()
	httpc.SetBaseURL(baseURL)
	httpc.SetTimeout(timeout)
	httpc.SetHeaders(map[string]string{
		"APCA-API-KEY-ID":     key,
		"APCA-API-SECRET-KEY": secret,
	})
	return &Client{http: httpc}
}

// Alpaca transmits money fields as JSON strings.
type wireAccount struct {
	BuyingPower    string `json:"buying_power"`
	PortfolioValue string `json:"portfolio_value"`
	Cash           string `json:"cash"`
	DaytradeCount  int    `json:"daytrade_count"`
}

type wirePosition struct {
	Symbol         string `json:"symbol"`
	Qty            string `json:"qty"`
	AvgEntryPrice  string `json:"avg_entry_price"`
	CurrentPrice   string `json:"current_price"`
	UnrealizedPL   string `json:"unrealized_pl"`
	UnrealizedPLPC string `json:"unrealized_plpc"`
}

type wireOrder struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	FilledAvgPrice *string `json:"filled_avg_price"`
}

func (c *Client) Account(ctx context.Context) (model.AccountSummary, error) {
	var acct wireAccount
	resp, err := c.http.R().SetContext(ctx).SetResult(&acct).Get("/v2/account")
	if err != nil {
		return model.AccountSummary{}, err
	}
	if resp.IsError() {
		return model.AccountSummary{}, apiError(resp)
	}
	return model.AccountSummary{
		BuyingPower:    money(acct.BuyingPower),
		PortfolioValue: money(acct.PortfolioValue),
		Cash:           money(acct.Cash),
		DayTradeCount:  acct.DaytradeCount,
	}, nil
}

func (c *Client) Positions(ctx context.Context) ([]model.Position, error) {
	var raw []wirePosition
	resp, err := c.http.R().SetContext(ctx).SetResult(&raw).Get("/v2/positions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	positions := make([]model.Position, 0, len(raw))
	for _, p := range raw {
		positions = append(positions, model.Position{
			Ticker:          p.Symbol,
			Qty:             money(p.Qty),
			AvgEntryPrice:   money(p.AvgEntryPrice),
			CurrentPrice:    money(p.CurrentPrice),
			UnrealizedPL:    money(p.UnrealizedPL),
			UnrealizedPLPct: money(p.UnrealizedPLPC) * 100,
		})
	}
	return positions, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req broker.OrderRequest) (broker.OrderResponse, error) {
	var order wireOrder
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&order).Post("/v2/orders")
	if err != nil {
		return broker.OrderResponse{}, err
	}
	if resp.IsError() {
		return broker.OrderResponse{}, apiError(resp)
	}
	filled := 0.0
	if order.FilledAvgPrice != nil {
		filled = money(*order.FilledAvgPrice)
	}
	return broker.OrderResponse{ID: order.ID, Status: order.Status, FilledAvgPrice: filled}, nil
}

func money(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
