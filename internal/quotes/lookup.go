// Package quotes provides the stock price lookup capability used for
// portfolio valuation, including the simulated quote feed and the in-memory
// price cache it refreshes.
package quotes

import "github.com/shopspring/decimal"

// Lookup resolves a ticker symbol to its current price. The second return
// reports whether the ticker is known; callers fall back to the holding's
// purchase price when it is not.
type Lookup interface {
	Price(ticker string) (decimal.Decimal, bool)
}

// Static is a fixed ticker-to-price table implementing Lookup.
type Static map[string]decimal.Decimal

// Price returns the table entry for ticker, if any.
func (s Static) Price(ticker string) (decimal.Decimal, bool) {
	p, ok := s[ticker]
	return p, ok
}

// None is an empty lookup: every ticker is unknown, so valuation always
// falls back to purchase prices.
var None = Static{}
