package quotes

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Cache is a concurrency-safe in-memory price table. The refresher writes
// to it from its own goroutine while renders read it, so access is guarded.
// The cache is never persisted.
type Cache struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
}

// NewCache creates an empty price cache.
func NewCache() *Cache {
	return &Cache{prices: make(map[string]decimal.Decimal)}
}

// Price returns the cached price for ticker, if present.
func (c *Cache) Price(ticker string) (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.prices[ticker]
	return p, ok
}

// Set stores a price for ticker.
func (c *Cache) Set(ticker string, price decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[ticker] = price
}

// Len returns the number of cached tickers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.prices)
}
