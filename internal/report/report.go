// Package report implements the aggregation engine: pure functions deriving
// monthly spend, category breakdowns, portfolio valuation, net worth and net
// debt from a document snapshot. Every function is deterministic in its
// inputs and total over partially initialized documents — missing
// collections count as empty.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anthariksham-labs/kubera/internal/model"
	"github.com/anthariksham-labs/kubera/internal/quotes"
)

// CategoryTotal is one (category, summed amount) pair of a breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthlyExpenses returns the expenses whose timestamp falls in the given
// calendar month and year, newest first. Month boundaries are evaluated in
// UTC. Insertion order is never trusted; ordering is imposed at read time.
func MonthlyExpenses(doc *model.Document, month time.Month, year int) []model.Expense {
	if doc == nil {
		return nil
	}
	var out []model.Expense
	for _, e := range doc.Expenses {
		ts := e.Timestamp.UTC()
		if ts.Month() == month && ts.Year() == year {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// MonthlyTotal sums the amounts of the month's expenses.
func MonthlyTotal(doc *model.Document, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range MonthlyExpenses(doc, month, year) {
		total = total.Add(e.Amount)
	}
	return total
}

// TopCategories groups the month's expenses by category, sums each group
// and returns at most n pairs sorted by total descending. Equal totals keep
// the order the categories were first encountered in.
func TopCategories(doc *model.Document, month time.Month, year int, n int) []CategoryTotal {
	if n <= 0 {
		return nil
	}

	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range MonthlyExpenses(doc, month, year) {
		if _, seen := sums[e.Category]; !seen {
			order = append(order, e.Category)
		}
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		totals = append(totals, CategoryTotal{Category: c, Total: sums[c]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})

	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// currentPrice resolves a holding's price, falling back to the purchase
// price when the lookup does not know the ticker.
func currentPrice(h model.Holding, lookup quotes.Lookup) decimal.Decimal {
	if lookup != nil {
		if p, ok := lookup.Price(h.Ticker); ok {
			return p
		}
	}
	return h.PurchasePrice
}

// PortfolioValue values every holding of the asset at current prices. The
// asset's balance field is ignored; holdings are the only source of truth.
func PortfolioValue(asset model.Asset, lookup quotes.Lookup) decimal.Decimal {
	total := decimal.Zero
	for _, h := range asset.Holdings {
		total = total.Add(h.Shares.Mul(currentPrice(h, lookup)))
	}
	return total
}

// PortfolioGainLoss is the unrealized gain or loss across the asset's
// holdings relative to their purchase prices.
func PortfolioGainLoss(asset model.Asset, lookup quotes.Lookup) decimal.Decimal {
	total := decimal.Zero
	for _, h := range asset.Holdings {
		total = total.Add(h.Shares.Mul(currentPrice(h, lookup).Sub(h.PurchasePrice)))
	}
	return total
}

// NetWorth sums plain asset balances and portfolio valuations and subtracts
// debt balances. Order of the assets never matters.
func NetWorth(doc *model.Document, lookup quotes.Lookup) decimal.Decimal {
	total := decimal.Zero
	if doc == nil {
		return total
	}
	for _, a := range doc.Assets {
		switch a.Type {
		case model.AssetTypePortfolio:
			total = total.Add(PortfolioValue(a, lookup))
		case model.AssetTypeDebt:
			total = total.Sub(a.Balance)
		default:
			total = total.Add(a.Balance)
		}
	}
	return total
}

// NetDebt sums debt balances only; assets are not netted against it.
func NetDebt(doc *model.Document) decimal.Decimal {
	total := decimal.Zero
	if doc == nil {
		return total
	}
	for _, a := range doc.Assets {
		if a.Type == model.AssetTypeDebt {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// LedgerBalance is the value-change ledger variant of net worth: the asset
// ledger summed minus the debt ledger summed.
func LedgerBalance(doc *model.Document) decimal.Decimal {
	total := decimal.Zero
	if doc == nil {
		return total
	}
	for _, e := range doc.AssetsLedger {
		total = total.Add(e.ValueChange)
	}
	for _, e := range doc.DebtsLedger {
		total = total.Sub(e.ValueChange)
	}
	return total
}

// ledgerDebt sums the debt ledger's value changes.
func ledgerDebt(doc *model.Document) decimal.Decimal {
	total := decimal.Zero
	if doc == nil {
		return total
	}
	for _, e := range doc.DebtsLedger {
		total = total.Add(e.ValueChange)
	}
	return total
}

// Summary is the dashboard view for one month: monthly spend plus combined
// net worth and net debt. Typed assets and the value-change ledgers are
// disjoint collections, so their contributions add without double counting.
type Summary struct {
	MonthlySpend decimal.Decimal
	NetWorth     decimal.Decimal
	NetDebt      decimal.Decimal
}

// Summarize computes the Summary for the given month and year.
func Summarize(doc *model.Document, month time.Month, year int, lookup quotes.Lookup) Summary {
	return Summary{
		MonthlySpend: MonthlyTotal(doc, month, year),
		NetWorth:     NetWorth(doc, lookup).Add(LedgerBalance(doc)),
		NetDebt:      NetDebt(doc).Add(ledgerDebt(doc)),
	}
}

// Snapshots returns the net worth history newest first without mutating the
// document's own slice.
func Snapshots(doc *model.Document) []model.NetWorthSnapshot {
	if doc == nil || len(doc.NetWorthHistory) == 0 {
		return nil
	}
	out := make([]model.NetWorthSnapshot, len(doc.NetWorthHistory))
	copy(out, doc.NetWorthHistory)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
