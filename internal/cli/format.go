package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a decimal amount in the document's currency, e.g.
// "₹1,234.50" or "$700.00". Unknown currency codes fall back to a plain
// fixed-point rendering with the code appended.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		return amount.StringFixed(2) + " " + currencyCode
	}
	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currencyCode).Display()
}

// FormatGainLoss renders a signed amount styled green for gains and red for
// losses, with an explicit sign.
func FormatGainLoss(amount decimal.Decimal, currencyCode string) string {
	rendered := FormatAmount(amount.Abs(), currencyCode)
	if amount.IsNegative() {
		return ErrorStyle.Render("-" + rendered)
	}
	return SuccessStyle.Render("+" + rendered)
}
