// Package symbols decides whether a ticker refers to a crypto asset and
// normalizes crypto tickers to the broker's BASE/QUOTE notation.
package symbols

import "strings"

// cryptoBases are the tradable crypto base symbols recognized for detection.
var cryptoBases = map[string]struct{}{
	"BTC": {}, "ETH": {}, "SOL": {}, "DOGE": {}, "AVAX": {}, "LINK": {},
	"UNI": {}, "AAVE": {}, "DOT": {}, "MATIC": {}, "SHIB": {}, "LTC": {},
	"BCH": {}, "XLM": {}, "ALGO": {}, "ATOM": {}, "ADA": {}, "XRP": {},
	"USDT": {}, "USDC": {},
}

func isKnownBase(s string) bool {
	_, ok := cryptoBases[s]
	return ok
}

// IsCrypto reports whether ticker refers to a crypto asset. Detection is
// case-insensitive and accepts BTC, BTCUSD and BTC/USD style inputs.
func IsCrypto(ticker string) bool {
	if strings.Contains(ticker, "/") {
		return true
	}
	t := strings.ToUpper(strings.TrimSpace(ticker))
	t = strings.ReplaceAll(t, "/", "")
	if strings.HasSuffix(t, "USD") && isKnownBase(strings.TrimSuffix(t, "USD")) {
		return true
	}
	return isKnownBase(t)
}

// NormalizeCrypto rewrites a crypto ticker into BASE/QUOTE form:
// BTC/USD stays as is, BTCUSD becomes BTC/USD, BTC becomes BTC/USD.
// Unrecognized tickers are returned uppercased unchanged.
func NormalizeCrypto(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if strings.Contains(t, "/") {
		return t
	}
	if strings.HasSuffix(t, "USD") && isKnownBase(strings.TrimSuffix(t, "USD")) {
		return strings.TrimSuffix(t, "USD") + "/USD"
	}
	if isKnownBase(t) {
		return t + "/USD"
	}
	return t
}

// Resolve returns the broker-facing symbol for ticker along with its asset
// class: crypto tickers are normalized, equities are uppercased and trimmed.
func Resolve(ticker string) (string, bool) {
	if IsCrypto(ticker) {
		return NormalizeCrypto(ticker), true
	}
	return strings.ToUpper(strings.TrimSpace(ticker)), false
}
