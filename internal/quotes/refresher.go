package quotes

import (
	"context"
	"log/slog"
	"time"

	"github.com/anthariksham-labs/kubera/internal/model"
)

// DefaultRefreshInterval matches the 30 second cadence of the dashboard's
// price updates.
const DefaultRefreshInterval = 30 * time.Second

// Refresher periodically pulls quotes for the portfolio tickers of a
// document into a Cache. It only touches the in-memory cache; a refresh
// never triggers a persisted write.
type Refresher struct {
	feed     Lookup
	cache    *Cache
	interval time.Duration
}

// NewRefresher creates a refresher pulling from feed into cache. A
// non-positive interval falls back to DefaultRefreshInterval.
func NewRefresher(feed Lookup, cache *Cache, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{feed: feed, cache: cache, interval: interval}
}

// RefreshOnce updates the cache for every ticker held in any Portfolio
// asset of doc.
func (r *Refresher) RefreshOnce(doc *model.Document) {
	if doc == nil {
		return
	}
	count := 0
	for _, asset := range doc.Assets {
		if asset.Type != model.AssetTypePortfolio {
			continue
		}
		for _, h := range asset.Holdings {
			if price, ok := r.feed.Price(h.Ticker); ok {
				r.cache.Set(h.Ticker, price)
				count++
			}
		}
	}
	slog.Debug("refreshed quote cache", "tickers", count)
}

// Run refreshes the cache on the configured interval until ctx is
// cancelled. The document supplier is re-invoked each tick so newly added
// holdings get quotes without a restart.
func (r *Refresher) Run(ctx context.Context, docFn func() *model.Document) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.RefreshOnce(docFn())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshOnce(docFn())
		}
	}
}
