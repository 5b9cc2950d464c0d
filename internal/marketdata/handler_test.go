package marketdata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aura-gateway/internal/alpaca"
	"aura-gateway/internal/model"
)

func getMarket(t *testing.T, fs *fakeSource, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	NewHandler(NewService(fs)).Get(rec, req)
	return rec
}

func TestMarketHandlerRequiresTicker(t *testing.T) {
	rec := getMarket(t, &fakeSource{}, "/api/market")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMarketHandlerInvalidPeriod(t *testing.T) {
	rec := getMarket(t, &fakeSource{}, "/api/market?ticker=AAPL&period=6M")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid period") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestMarketHandlerBarsDefaults(t *testing.T) {
	fs := &fakeSource{bars: []model.Bar{{Timestamp: "2025-08-01T00:00:00Z", Close: 210.1, Volume: 100}}}
	rec := getMarket(t, fs, "/api/market?ticker=aapl")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp barsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Ticker != "AAPL" || string(resp.Period) != "1M" {
		t.Errorf("resp = %+v", resp)
	}
	if fs.lastCall.timeframe != "1Day" {
		t.Errorf("default period not applied, timeframe = %q", fs.lastCall.timeframe)
	}
	if len(resp.Bars) != 1 {
		t.Errorf("bars = %+v", resp.Bars)
	}
}

func TestMarketHandlerQuoteAction(t *testing.T) {
	fs := &fakeSource{snap: alpaca.Snapshot{LastPrice: 100, PrevClose: 90, DayVolume: 5}}
	rec := getMarket(t, fs, "/api/market?ticker=BTC&action=quote")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var quote model.Quote
	if err := json.Unmarshal(rec.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if quote.Ticker != "BTC/USD" || quote.Price != 100 {
		t.Errorf("quote = %+v", quote)
	}
}

func TestMarketHandlerUpstreamFailureMapsTo500(t *testing.T) {
	fs := &fakeSource{barsErr: errTest}
	rec := getMarket(t, fs, "/api/market?ticker=AAPL")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

var errTest = &alpaca.APIError{StatusCode: 502, Message: "bad gateway"}
