// Package ledger implements the mutation layer over the persisted document.
// Every operation is a serialized read-modify-write: load the whole
// document, change it in memory, save it back. The mutex closes the
// lost-update window between two rapid mutations, since the store itself
// only offers whole-document overwrite.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/anthariksham-labs/kubera/internal/common"
	"github.com/anthariksham-labs/kubera/internal/model"
	"github.com/anthariksham-labs/kubera/internal/service"
)

// Service owns all mutations of the ledger document. It is created per
// application session and passed to whatever needs it; there is no global
// instance.
type Service struct {
	store service.Store
	mu    sync.Mutex
}

// New creates a ledger service backed by the given store.
func New(store service.Store) *Service {
	return &Service{store: store}
}

// Document returns the current persisted document for read-only use.
func (s *Service) Document(ctx context.Context) (*model.Document, error) {
	return s.store.Load(ctx)
}

// Reset drops the persisted document; the next read reseeds defaults.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear(ctx)
}

// mutate runs fn against a freshly loaded document and persists the result.
// Mutations are serialized; a failed save leaves the stored document as it
// was and the error is returned whole.
func (s *Service) mutate(ctx context.Context, fn func(doc *model.Document) error) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	return s.store.Save(ctx, doc)
}

// parsePositive parses a user-supplied numeric field, rejecting anything
// that is not a strictly positive number.
func parsePositive(value, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", common.ErrValidation, field)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be positive", common.ErrValidation, field)
	}
	return d, nil
}
