package model

// AccountSummary is a point-in-time snapshot of the paper account.
type AccountSummary struct {
	BuyingPower    float64 `json:"buyingPower"`
	PortfolioValue float64 `json:"portfolioValue"`
	Cash           float64 `json:"cash"`
	DayTradeCount  int     `json:"dayTradeCount"`
}

// Position is one held asset with its unrealized P&L.
type Position struct {
	Ticker          string  `json:"ticker"`
	Qty             float64 `json:"qty"`
	AvgEntryPrice   float64 `json:"avgEntryPrice"`
	CurrentPrice    float64 `json:"currentPrice"`
	UnrealizedPL    float64 `json:"unrealizedPL"`
	UnrealizedPLPct float64 `json:"unrealizedPLPercent"`
}

// TradeResult is the uniform outcome of an order submission. Success carries
// the broker order id; failure carries a human-readable error and nothing else.
type TradeResult struct {
	Success     bool    `json:"success"`
	OrderID     string  `json:"orderId,omitempty"`
	Status      string  `json:"status,omitempty"`
	FilledPrice float64 `json:"filledPrice"`
	Error       string  `json:"error,omitempty"`
}

// Bar is one OHLCV interval. Timestamp is the broker's RFC3339 bar time.
type Bar struct {
	Timestamp string  `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// Quote is a snapshot of the latest trade with change vs the previous close.
type Quote struct {
	Ticker        string  `json:"ticker"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
}
