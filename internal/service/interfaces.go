// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/anthariksham-labs/kubera/internal/model"
)

// Store defines the contract for the persistence layer: whole-document
// load, overwrite-or-fail save, and clear. Save stamps last_updated.
type Store interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) (*model.Document, error)
	Clear(ctx context.Context) error
	Close() error
}
