package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anthariksham-labs/kubera/internal/model"
	"github.com/anthariksham-labs/kubera/internal/testutil"
)

func TestRenderExpenses(t *testing.T) {
	t.Run("dates print in UTC regardless of the local zone", func(t *testing.T) {
		// A late-evening UTC expense crosses midnight in zones east of UTC.
		// The rendered date must stay inside the month the filter selected.
		restore := time.Local
		time.Local = time.FixedZone("East", 8*3600)
		defer func() { time.Local = restore }()

		doc := model.DefaultDocument()
		late := testutil.Expense(42.00, "Dining Out", "2024-01-15")
		late.Timestamp = time.Date(2024, 1, 31, 23, 30, 0, 0, time.UTC)
		doc.Expenses = append(doc.Expenses, late)

		var buf bytes.Buffer
		renderExpenses(&buf, doc, time.January, 2024, "USD")

		out := buf.String()
		assert.Contains(t, out, "2024-01-31")
		assert.NotContains(t, out, "2024-02-01")
	})

	t.Run("empty month prints a notice", func(t *testing.T) {
		var buf bytes.Buffer
		renderExpenses(&buf, model.DefaultDocument(), time.March, 2024, "USD")
		assert.Contains(t, buf.String(), "No expenses recorded for March 2024")
	})
}

func TestResolveMonth(t *testing.T) {
	t.Run("explicit values pass through", func(t *testing.T) {
		m, y := resolveMonth(7, 2023)
		assert.Equal(t, time.July, m)
		assert.Equal(t, 2023, y)
	})

	t.Run("zero values default to the current UTC date", func(t *testing.T) {
		now := time.Now().UTC()
		m, y := resolveMonth(0, 0)
		assert.Equal(t, now.Month(), m)
		assert.Equal(t, now.Year(), y)
	})
}
