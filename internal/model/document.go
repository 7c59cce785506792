// Package model defines the domain types for the kubera ledger.
package model

import "time"

// Document is the single persisted object holding every category set and
// ledger. Mutations always replace the whole document; there are no partial
// update semantics.
type Document struct {
	LastUpdated       time.Time          `json:"last_updated"`
	Categories        []string           `json:"categories"`
	AssetCategories   []string           `json:"asset_categories"`
	DebtCategories    []string           `json:"debt_categories"`
	CurrencySupported []string           `json:"currency_supported"`
	Expenses          []Expense          `json:"expenses"`
	Assets            []Asset            `json:"assets"`
	AssetsLedger      []LedgerEntry      `json:"assets_ledger"`
	DebtsLedger       []LedgerEntry      `json:"debts_ledger"`
	NetWorthHistory   []NetWorthSnapshot `json:"net_worth_history"`
}

// DefaultDocument returns the document seeded on first run.
func DefaultDocument() *Document {
	return &Document{
		Categories: []string{
			"Groceries", "Dining Out", "Travel", "Shopping",
			"House", "Health", "Anthariksham Labs", "Learning",
		},
		AssetCategories: []string{
			"Savings A/C", "Checkings A/C", "Stocks", "Bonds", "Property", "Vehicle",
		},
		DebtCategories:    []string{"Credit Card", "Loan", "Owing"},
		CurrencySupported: []string{"INR", "USD"},
		Expenses:          []Expense{},
		Assets:            []Asset{},
		AssetsLedger:      []LedgerEntry{},
		DebtsLedger:       []LedgerEntry{},
		NetWorthHistory:   []NetWorthSnapshot{},
	}
}

// HasCategory reports whether name is already in the expense category set.
// Matching is case-sensitive.
func (d *Document) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// AssetByID returns the asset with the given id, or nil.
func (d *Document) AssetByID(id string) *Asset {
	for i := range d.Assets {
		if d.Assets[i].ID == id {
			return &d.Assets[i]
		}
	}
	return nil
}

// FirstPortfolio returns the first Portfolio asset, or nil when the document
// has none.
func (d *Document) FirstPortfolio() *Asset {
	for i := range d.Assets {
		if d.Assets[i].Type == AssetTypePortfolio {
			return &d.Assets[i]
		}
	}
	return nil
}
