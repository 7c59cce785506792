package model

import "github.com/shopspring/decimal"

// AssetType indicates how an asset's balance contributes to net worth.
type AssetType string

const (
	// AssetTypeSavings is a plain positive holding.
	AssetTypeSavings AssetType = "Savings"
	// AssetTypeHSA is a health savings account, counted like savings.
	AssetTypeHSA AssetType = "HSA"
	// AssetTypeDebt is an outstanding amount owed; subtracted from net worth.
	AssetTypeDebt AssetType = "Debt"
	// AssetTypePortfolio holds stock lots; its balance field is never
	// authoritative, value is derived from holdings at current prices.
	AssetTypePortfolio AssetType = "Portfolio"
)

// Asset represents one asset or debt account. Type is usually one of the
// constants above but free-form ledger category names are accepted and
// counted like savings.
type Asset struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     AssetType       `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Holdings []Holding       `json:"holdings,omitempty"`
}

// Holding is one purchase lot of a security inside a Portfolio asset. Lots
// with the same ticker are kept separate, never merged.
type Holding struct {
	Ticker        string          `json:"ticker"`
	Shares        decimal.Decimal `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// AssetPatch carries the fields of an asset update. Nil fields are left
// untouched by the merge.
type AssetPatch struct {
	Name     *string          `json:"name,omitempty"`
	Type     *AssetType       `json:"type,omitempty"`
	Balance  *decimal.Decimal `json:"balance,omitempty"`
	Holdings *[]Holding       `json:"holdings,omitempty"`
}

// Apply shallow-merges the set fields of the patch into the asset.
func (p AssetPatch) Apply(a *Asset) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
	if p.Holdings != nil {
		a.Holdings = *p.Holdings
	}
}
