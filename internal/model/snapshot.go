package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthSnapshot is an immutable point-in-time record of net worth.
// Snapshots are only ever appended; the core never edits or removes them.
type NetWorthSnapshot struct {
	Timestamp time.Time       `json:"timestamp"`
	ID        string          `json:"id"`
	Value     decimal.Decimal `json:"value"`
}
