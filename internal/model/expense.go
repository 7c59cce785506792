package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expense.
type Expense struct {
	Timestamp   time.Time       `json:"timestamp"`
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// LedgerEntry is a signed value-change record on either the asset or the
// debt side of the ledger. Summing the asset ledger and subtracting the debt
// ledger yields that ledger's contribution to net worth.
type LedgerEntry struct {
	Label       string          `json:"label"`
	ValueChange decimal.Decimal `json:"value_change"`
}
