package quotes

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// basePrices anchor the simulated quotes for a few well known tickers.
var basePrices = map[string]struct{ base, spread float64 }{
	"AAPL":  {150, 50},
	"GOOGL": {2500, 200},
	"TSLA":  {200, 100},
	"MSFT":  {300, 50},
	"AMZN":  {3200, 300},
}

// MockFeed simulates an external quote source: known tickers get their base
// price plus a random spread, unknown tickers get a price in [100, 1000).
// It is a stand-in for a real market-data client; anything implementing
// Lookup can replace it without touching the aggregation code.
type MockFeed struct {
	rng *rand.Rand
}

// NewMockFeed creates a feed with the given seed so tests stay deterministic.
func NewMockFeed(seed int64) *MockFeed {
	return &MockFeed{rng: rand.New(rand.NewSource(seed))}
}

// Price returns a simulated quote. Every ticker is known to the mock feed.
func (f *MockFeed) Price(ticker string) (decimal.Decimal, bool) {
	if p, ok := basePrices[ticker]; ok {
		return decimal.NewFromFloat(p.base + f.rng.Float64()*p.spread), true
	}
	return decimal.NewFromFloat(100 + f.rng.Float64()*900), true
}
