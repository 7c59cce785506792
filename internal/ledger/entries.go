package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anthariksham-labs/kubera/internal/common"
	"github.com/anthariksham-labs/kubera/internal/model"
)

// parseEntry validates a value-change ledger row. The change is signed;
// only the label and numeric form are checked.
func parseEntry(label, valueChange string) (model.LedgerEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.LedgerEntry{}, fmt.Errorf("%w: label is required", common.ErrValidation)
	}
	change, err := decimal.NewFromString(strings.TrimSpace(valueChange))
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("%w: value change must be a number", common.ErrValidation)
	}
	return model.LedgerEntry{Label: label, ValueChange: change}, nil
}

// AddAssetEntry appends a signed value change to the asset side of the
// ledger.
func (s *Service) AddAssetEntry(ctx context.Context, label, valueChange string) (*model.LedgerEntry, error) {
	entry, err := parseEntry(label, valueChange)
	if err != nil {
		return nil, err
	}
	_, err = s.mutate(ctx, func(doc *model.Document) error {
		doc.AssetsLedger = append(doc.AssetsLedger, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("added asset ledger entry", "label", entry.Label, "value_change", entry.ValueChange)
	return &entry, nil
}

// AddDebtEntry appends a signed value change to the debt side of the ledger.
func (s *Service) AddDebtEntry(ctx context.Context, label, valueChange string) (*model.LedgerEntry, error) {
	entry, err := parseEntry(label, valueChange)
	if err != nil {
		return nil, err
	}
	_, err = s.mutate(ctx, func(doc *model.Document) error {
		doc.DebtsLedger = append(doc.DebtsLedger, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("added debt ledger entry", "label", entry.Label, "value_change", entry.ValueChange)
	return &entry, nil
}
