// Package testutil provides shared helpers for tests that need a real
// store or prebuilt documents.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anthariksham-labs/kubera/internal/model"
	"github.com/anthariksham-labs/kubera/internal/storage"
)

// SetupTestStore creates a SQLite store in a per-test temp directory and
// registers its cleanup.
func SetupTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "kubera.db"))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// Expense builds an expense with a fixed timestamp for aggregation tests.
func Expense(amount float64, category, day string) model.Expense {
	ts, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic("bad test timestamp: " + day)
	}
	return model.Expense{
		ID:        uuid.NewString(),
		Amount:    decimal.NewFromFloat(amount),
		Category:  category,
		Timestamp: ts.UTC(),
	}
}

// Asset builds a non-portfolio asset.
func Asset(name string, assetType model.AssetType, balance float64) model.Asset {
	return model.Asset{
		ID:      uuid.NewString(),
		Name:    name,
		Type:    assetType,
		Balance: decimal.NewFromFloat(balance),
	}
}

// Portfolio builds a Portfolio asset with the given holdings.
func Portfolio(name string, holdings ...model.Holding) model.Asset {
	return model.Asset{
		ID:       uuid.NewString(),
		Name:     name,
		Type:     model.AssetTypePortfolio,
		Balance:  decimal.Zero,
		Holdings: holdings,
	}
}

// Holding builds one purchase lot.
func Holding(ticker string, shares, purchasePrice float64) model.Holding {
	return model.Holding{
		Ticker:        ticker,
		Shares:        decimal.NewFromFloat(shares),
		PurchasePrice: decimal.NewFromFloat(purchasePrice),
	}
}
