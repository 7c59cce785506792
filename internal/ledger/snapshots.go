package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/anthariksham-labs/kubera/internal/model"
	"github.com/anthariksham-labs/kubera/internal/quotes"
	"github.com/anthariksham-labs/kubera/internal/report"
)

// TakeSnapshot appends the current net worth to the snapshot history.
// Snapshots are append-only; nothing in the core ever edits or removes one.
func (s *Service) TakeSnapshot(ctx context.Context, lookup quotes.Lookup) (*model.NetWorthSnapshot, error) {
	var snapshot model.NetWorthSnapshot

	_, err := s.mutate(ctx, func(doc *model.Document) error {
		snapshot = model.NetWorthSnapshot{
			ID:        uuid.NewString(),
			Timestamp: time.Now().UTC(),
			Value:     report.NetWorth(doc, lookup).Add(report.LedgerBalance(doc)),
		}
		doc.NetWorthHistory = append(doc.NetWorthHistory, snapshot)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("took net worth snapshot", "id", snapshot.ID, "value", snapshot.Value)
	return &snapshot, nil
}

// Snapshots returns the history newest first.
func (s *Service) Snapshots(ctx context.Context) ([]model.NetWorthSnapshot, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return report.Snapshots(doc), nil
}
