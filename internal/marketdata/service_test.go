package marketdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"aura-gateway/internal/alpaca"
	"aura-gateway/internal/model"
	"aura-gateway/internal/types"
)

type fakeSource struct {
	bars     []model.Bar
	barsErr  error
	snap     alpaca.Snapshot
	snapErr  error
	lastCall struct {
		symbol    string
		crypto    bool
		timeframe string
		start     time.Time
		limit     int
	}
}

func (f *fakeSource) Bars(ctx context.Context, symbol string, crypto bool, timeframe string, start time.Time, limit int) ([]model.Bar, error) {
	f.lastCall.symbol = symbol
	f.lastCall.crypto = crypto
	f.lastCall.timeframe = timeframe
	f.lastCall.start = start
	f.lastCall.limit = limit
	return f.bars, f.barsErr
}

func (f *fakeSource) Snapshot(ctx context.Context, symbol string, crypto bool) (alpaca.Snapshot, error) {
	f.lastCall.symbol = symbol
	f.lastCall.crypto = crypto
	return f.snap, f.snapErr
}

func TestBarsInvalidPeriod(t *testing.T) {
	svc := NewService(&fakeSource{})
	_, err := svc.Bars(context.Background(), "AAPL", types.Period("6M"))
	var invalid *InvalidPeriodError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidPeriodError", err)
	}
	want := "Invalid period '6M'. Must be one of: 1D, 1W, 1M, 3M, 1Y"
	if invalid.Error() != want {
		t.Errorf("message = %q, want %q", invalid.Error(), want)
	}
}

func TestBarsPeriodMapping(t *testing.T) {
	cases := []struct {
		period    types.Period
		timeframe string
		lookback  time.Duration
	}{
		{types.Period1D, "5Min", 24 * time.Hour},
		{types.Period1W, "15Min", 7 * 24 * time.Hour},
		{types.Period1M, "1Day", 30 * 24 * time.Hour},
		{types.Period3M, "1Day", 90 * 24 * time.Hour},
		{types.Period1Y, "1Week", 365 * 24 * time.Hour},
	}
	for _, c := range cases {
		fs := &fakeSource{}
		svc := NewService(fs)
		before := time.Now().UTC()
		if _, err := svc.Bars(context.Background(), "AAPL", c.period); err != nil {
			t.Fatalf("%s: %v", c.period, err)
		}
		if fs.lastCall.timeframe != c.timeframe {
			t.Errorf("%s: timeframe = %q, want %q", c.period, fs.lastCall.timeframe, c.timeframe)
		}
		wantStart := before.Add(-c.lookback)
		if diff := fs.lastCall.start.Sub(wantStart); diff < 0 || diff > time.Minute {
			t.Errorf("%s: start = %v, want about %v", c.period, fs.lastCall.start, wantStart)
		}
		if fs.lastCall.limit != 1000 {
			t.Errorf("%s: limit = %d, want 1000", c.period, fs.lastCall.limit)
		}
	}
}

func TestBarsResolvesCryptoSymbol(t *testing.T) {
	fs := &fakeSource{}
	svc := NewService(fs)
	if _, err := svc.Bars(context.Background(), "btcusd", types.Period1M); err != nil {
		t.Fatal(err)
	}
	if fs.lastCall.symbol != "BTC/USD" || !fs.lastCall.crypto {
		t.Errorf("call = %+v", fs.lastCall)
	}
}

func TestQuoteComputesChange(t *testing.T) {
	fs := &fakeSource{snap: alpaca.Snapshot{LastPrice: 150.125, PrevClose: 148, DayVolume: 123456}}
	svc := NewService(fs)
	quote, err := svc.Quote(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if quote.Ticker != "AAPL" {
		t.Errorf("ticker = %q", quote.Ticker)
	}
	if quote.Change != 2.13 {
		t.Errorf("change = %v, want 2.13", quote.Change)
	}
	if quote.ChangePercent != 1.44 {
		t.Errorf("changePercent = %v, want 1.44", quote.ChangePercent)
	}
	if quote.Volume != 123456 {
		t.Errorf("volume = %d", quote.Volume)
	}
}

func TestQuoteZeroPrevClose(t *testing.T) {
	fs := &fakeSource{snap: alpaca.Snapshot{LastPrice: 42.5, PrevClose: 0}}
	svc := NewService(fs)
	quote, err := svc.Quote(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if quote.Change != 0 || quote.ChangePercent != 0 {
		t.Errorf("change = %v, changePercent = %v, want both 0", quote.Change, quote.ChangePercent)
	}
	if quote.Price != 42.5 {
		t.Errorf("price = %v", quote.Price)
	}
}

func TestQuotePassesThroughSourceError(t *testing.T) {
	fs := &fakeSource{snapErr: errors.New("upstream 502")}
	svc := NewService(fs)
	if _, err := svc.Quote(context.Background(), "AAPL"); err == nil {
		t.Fatal("expected error")
	}
}
