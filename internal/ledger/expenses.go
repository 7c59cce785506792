package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anthariksham-labs/kubera/internal/common"
	"github.com/anthariksham-labs/kubera/internal/model"
)

// AddExpense records a new expense. The amount must parse as a strictly
// positive number (the permissive zero/negative handling of early builds is
// gone). An unknown category is appended to the category set so the expense
// never dangles.
func (s *Service) AddExpense(ctx context.Context, amount, category, description string) (*model.Expense, error) {
	amt, err := parsePositive(amount, "amount")
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", common.ErrValidation)
	}

	expense := model.Expense{
		ID:          uuid.NewString(),
		Amount:      amt,
		Category:    category,
		Description: strings.TrimSpace(description),
		Timestamp:   time.Now().UTC(),
	}

	_, err = s.mutate(ctx, func(doc *model.Document) error {
		if !doc.HasCategory(category) {
			doc.Categories = append(doc.Categories, category)
		}
		doc.Expenses = append(doc.Expenses, expense)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("added expense", "id", expense.ID, "category", category, "amount", amt)
	return &expense, nil
}

// DeleteExpense removes the expense with the given id. A missing id is a
// no-op, not an error.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(doc *model.Document) error {
		kept := doc.Expenses[:0]
		for _, e := range doc.Expenses {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(doc.Expenses) {
			slog.Debug("delete of unknown expense ignored", "id", id)
		}
		doc.Expenses = kept
		return nil
	})
	return err
}

// addCategoryTo appends a name to one of the document's category sets.
// Matching is case-sensitive and an existing name is a silent no-op.
func (s *Service) addCategoryTo(ctx context.Context, name string, pick func(*model.Document) *[]string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", common.ErrValidation)
	}

	_, err := s.mutate(ctx, func(doc *model.Document) error {
		set := pick(doc)
		for _, c := range *set {
			if c == name {
				return nil
			}
		}
		*set = append(*set, name)
		return nil
	})
	return err
}

// AddCategory appends a new expense category.
func (s *Service) AddCategory(ctx context.Context, name string) error {
	return s.addCategoryTo(ctx, name, func(doc *model.Document) *[]string { return &doc.Categories })
}

// AddAssetCategory appends a new asset category.
func (s *Service) AddAssetCategory(ctx context.Context, name string) error {
	return s.addCategoryTo(ctx, name, func(doc *model.Document) *[]string { return &doc.AssetCategories })
}

// AddDebtCategory appends a new debt category.
func (s *Service) AddDebtCategory(ctx context.Context, name string) error {
	return s.addCategoryTo(ctx, name, func(doc *model.Document) *[]string { return &doc.DebtCategories })
}
