package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()

	assert.Contains(t, doc.Categories, "Groceries")
	assert.Contains(t, doc.Categories, "Dining Out")
	assert.Contains(t, doc.AssetCategories, "Savings A/C")
	assert.Contains(t, doc.DebtCategories, "Loan")
	assert.Equal(t, []string{"INR", "USD"}, doc.CurrencySupported)

	// Collections are present but empty so JSON renders [] not null.
	assert.NotNil(t, doc.Expenses)
	assert.NotNil(t, doc.Assets)
	assert.NotNil(t, doc.AssetsLedger)
	assert.NotNil(t, doc.DebtsLedger)
	assert.NotNil(t, doc.NetWorthHistory)
}

func TestDocumentJSONKeys(t *testing.T) {
	raw, err := json.Marshal(DefaultDocument())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{
		"last_updated", "categories", "asset_categories", "debt_categories",
		"currency_supported", "expenses", "assets", "assets_ledger",
		"debts_ledger", "net_worth_history",
	} {
		assert.Contains(t, fields, key)
	}
}

func TestHasCategoryIsCaseSensitive(t *testing.T) {
	doc := DefaultDocument()
	assert.True(t, doc.HasCategory("Groceries"))
	assert.False(t, doc.HasCategory("groceries"))
	assert.False(t, doc.HasCategory("Groceries "))
}

func TestAssetLookups(t *testing.T) {
	doc := DefaultDocument()
	doc.Assets = []Asset{
		{ID: "a1", Name: "Savings", Type: AssetTypeSavings},
		{ID: "a2", Name: "Stocks", Type: AssetTypePortfolio},
	}

	require.NotNil(t, doc.AssetByID("a2"))
	assert.Nil(t, doc.AssetByID("zzz"))

	portfolio := doc.FirstPortfolio()
	require.NotNil(t, portfolio)
	assert.Equal(t, "a2", portfolio.ID)

	// Returned pointers alias the document so callers can mutate in place.
	portfolio.Holdings = append(portfolio.Holdings, Holding{Ticker: "AAPL"})
	assert.Len(t, doc.Assets[1].Holdings, 1)
}

func TestAssetPatchApply(t *testing.T) {
	asset := Asset{ID: "a1", Name: "Savings", Type: AssetTypeSavings, Balance: decimal.NewFromInt(100)}

	newName := "Renamed"
	AssetPatch{Name: &newName}.Apply(&asset)
	assert.Equal(t, "Renamed", asset.Name)
	assert.Equal(t, AssetTypeSavings, asset.Type, "unset fields stay put")
	assert.True(t, asset.Balance.Equal(decimal.NewFromInt(100)))

	newBalance := decimal.NewFromInt(0)
	holdings := []Holding{{Ticker: "AAPL", Shares: decimal.NewFromInt(1), PurchasePrice: decimal.NewFromInt(2)}}
	newType := AssetTypePortfolio
	AssetPatch{Type: &newType, Balance: &newBalance, Holdings: &holdings}.Apply(&asset)
	assert.Equal(t, AssetTypePortfolio, asset.Type)
	assert.True(t, asset.Balance.IsZero())
	assert.Len(t, asset.Holdings, 1)
}
