package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthariksham-labs/kubera/internal/common"
	"github.com/anthariksham-labs/kubera/internal/model"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kubera.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, doc.Categories, "Groceries")
	assert.Contains(t, doc.AssetCategories, "Stocks")
	assert.Contains(t, doc.DebtCategories, "Credit Card")
	assert.Equal(t, []string{"INR", "USD"}, doc.CurrencySupported)
	assert.Empty(t, doc.Expenses)
	assert.Empty(t, doc.Assets)
	assert.False(t, doc.LastUpdated.IsZero(), "seed must be persisted with a timestamp")
}

func TestLoadSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	first, err := store.Load(ctx)
	require.NoError(t, err)

	// A second load with nothing written in between returns the same seed,
	// not a second distinct one.
	second, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.LastUpdated.Unix(), second.LastUpdated.Unix())
	assert.Equal(t, first.Categories, second.Categories)
}

func TestSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	doc, err := store.Load(ctx)
	require.NoError(t, err)

	doc.Expenses = append(doc.Expenses, model.Expense{
		ID:       "e1",
		Amount:   decimal.RequireFromString("42.50"),
		Category: "Groceries",
	})
	doc.Assets = append(doc.Assets, model.Asset{
		ID:      "a1",
		Name:    "Emergency Fund",
		Type:    model.AssetTypeSavings,
		Balance: decimal.NewFromInt(1000),
	})

	saved, err := store.Save(ctx, doc)
	require.NoError(t, err)
	assert.False(t, saved.LastUpdated.IsZero())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Expenses, 1)
	assert.True(t, loaded.Expenses[0].Amount.Equal(decimal.RequireFromString("42.50")))
	require.Len(t, loaded.Assets, 1)
	assert.Equal(t, "Emergency Fund", loaded.Assets[0].Name)

	// save(load()) then load() yields the same document.
	again, err := store.Save(ctx, loaded)
	require.NoError(t, err)
	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, again.Expenses, reloaded.Expenses)
	assert.Equal(t, again.Assets, reloaded.Assets)
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	doc.Expenses = append(doc.Expenses, model.Expense{ID: "e1", Amount: decimal.NewFromInt(5), Category: "House"})
	_, err = store.Save(ctx, doc)
	require.NoError(t, err)

	// Saving a document without the expense drops it: no merge semantics.
	fresh := model.DefaultDocument()
	_, err = store.Save(ctx, fresh)
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Expenses)
}

func TestSaveNilDocument(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Save(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilParameter)
}

func TestClearReseedsOnNextLoad(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	doc.Expenses = append(doc.Expenses, model.Expense{ID: "e1", Amount: decimal.NewFromInt(9), Category: "Travel"})
	_, err = store.Save(ctx, doc)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Expenses)
	assert.Contains(t, loaded.Categories, "Groceries")
}

func TestFailedSaveKeepsPriorDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	doc.Expenses = append(doc.Expenses, model.Expense{ID: "e1", Amount: decimal.NewFromInt(7), Category: "Health"})
	_, err = store.Save(ctx, doc)
	require.NoError(t, err)

	// Closing the connection forces the next save to fail whole.
	require.NoError(t, store.Close())
	_, err = store.Save(ctx, model.DefaultDocument())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPersistence)

	// Reopen the same file: the prior document is intact.
	reopened, err := NewSQLiteStore(store.dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Expenses, 1)
	assert.Equal(t, "e1", loaded.Expenses[0].ID)
}

func TestNewSQLiteStoreValidation(t *testing.T) {
	_, err := NewSQLiteStore("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}
