package alpaca

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"aura-gateway/internal/model"
)

// DataClient talks to the market data API.
type DataClient struct {
	http *resty.Client
}

func NewDataClient(baseURL, key, secret string, timeout time.Duration) *DataClient {
	httpc := resty.New()
	httpc.SetBaseURL(baseURL)
	httpc.SetTimeout(timeout)
	httpc.SetHeaders(map[string]string{
		"APCA-API-KEY-ID":     key,
		"APCA-API-SECRET-KEY": secret,
	})
	return &DataClient{http: httpc}
}

// Snapshot is the reduced snapshot the formatter needs: the latest trade
// price, the previous session's close and the current session's volume.
type Snapshot struct {
	LastPrice float64
	PrevClose float64
	DayVolume int64
}

type wireBar struct {
	Time   string  `json:"t"`
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

type wireTrade struct {
	Price float64 `json:"p"`
}

type wireSnapshot struct {
	LatestTrade  wireTrade `json:"latestTrade"`
	DailyBar     wireBar   `json:"dailyBar"`
	PrevDailyBar wireBar   `json:"prevDailyBar"`
}

// assetRoute localizes how the two endpoint families diverge: equities use a
// path segment per symbol and a flat response, crypto uses a symbols query
// parameter (slash percent-encoded) and nests payloads under a per-symbol key.
type assetRoute struct {
	barsPath       func(symbol string) string
	barsQuery      func(symbol string) map[string]string
	unwrapBars     func(body []byte, symbol string) ([]wireBar, error)
	snapshotPath   func(symbol string) string
	snapshotQuery  func(symbol string) map[string]string
	unwrapSnapshot func(body []byte, symbol string) (wireSnapshot, error)
}

var equityRoute = assetRoute{
	barsPath: func(symbol string) string { return "/v2/stocks/" + url.PathEscape(symbol) + "/bars" },
	barsQuery: func(string) map[string]string {
		return map[string]string{"adjustment": "raw", "feed": "iex"}
	},
	unwrapBars: func(body []byte, _ string) ([]wireBar, error) {
		var env struct {
			Bars []wireBar `json:"bars"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, err
		}
		return env.Bars, nil
	},
	snapshotPath: func(symbol string) string { return "/v2/stocks/" + url.PathEscape(symbol) + "/snapshot" },
	snapshotQuery: func(string) map[string]string {
		return map[string]string{"feed": "iex"}
	},
	unwrapSnapshot: func(body []byte, _ string) (wireSnapshot, error) {
		var snap wireSnapshot
		err := json.Unmarshal(body, &snap)
		return snap, err
	},
}

var cryptoRoute = assetRoute{
	barsPath: func(string) string { return "/v1beta3/crypto/us/bars" },
	barsQuery: func(symbol string) map[string]string {
		return map[string]string{"symbols": symbol}
	},
	unwrapBars: func(body []byte, symbol string) ([]wireBar, error) {
		var env struct {
			Bars map[string][]wireBar `json:"bars"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, err
		}
		return env.Bars[symbol], nil
	},
	snapshotPath: func(string) string { return "/v1beta3/crypto/us/snapshots" },
	snapshotQuery: func(symbol string) map[string]string {
		return map[string]string{"symbols": symbol}
	},
	unwrapSnapshot: func(body []byte, symbol string) (wireSnapshot, error) {
		var env struct {
			Snapshots map[string]wireSnapshot `json:"snapshots"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return wireSnapshot{}, err
		}
		return env.Snapshots[symbol], nil
	},
}

func routeFor(crypto bool) assetRoute {
	if crypto {
		return cryptoRoute
	}
	return equityRoute
}

// Bars fetches OHLCV bars for symbol from start onward, newest capped at
// limit. The symbol must already be broker-normalized.
func (c *DataClient) Bars(ctx context.Context, symbol string, crypto bool, timeframe string, start time.Time, limit int) ([]model.Bar, error) {
	rt := routeFor(crypto)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(rt.barsQuery(symbol)).
		SetQueryParams(map[string]string{
			"timeframe": timeframe,
			"start":     start.Format(time.RFC3339),
			"limit":     strconv.Itoa(limit),
		}).
		Get(rt.barsPath(symbol))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	raw, err := rt.unwrapBars(resp.Body(), symbol)
	if err != nil {
		return nil, err
	}
	bars := make([]model.Bar, 0, len(raw))
	for _, b := range raw {
		bars = append(bars, model.Bar{
			Timestamp: b.Time,
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			// Crypto volume can be fractional upstream; truncate.
			Volume: int64(b.Volume),
		})
	}
	return bars, nil
}

// Snapshot fetches the latest trade/session snapshot for symbol.
func (c *DataClient) Snapshot(ctx context.Context, symbol string, crypto bool) (Snapshot, error) {
	rt := routeFor(crypto)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(rt.snapshotQuery(symbol)).
		Get(rt.snapshotPath(symbol))
	if err != nil {
		return Snapshot{}, err
	}
	if resp.IsError() {
		return Snapshot{}, apiError(resp)
	}
	snap, err := rt.unwrapSnapshot(resp.Body(), symbol)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		LastPrice: snap.LatestTrade.Price,
		PrevClose: snap.PrevDailyBar.Close,
		DayVolume: int64(snap.DailyBar.Volume),
	}, nil
}
