package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthariksham-labs/kubera/internal/common"
	"github.com/anthariksham-labs/kubera/internal/model"
)

// Load returns the persisted document. On first run, when nothing has been
// stored yet, the seeded default document is persisted and returned, so a
// second Load with no writes in between sees the very same seed.
func (s *SQLiteStore) Load(ctx context.Context) (*model.Document, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	const query = `SELECT value FROM documents WHERE key = ?`

	var raw string
	err := s.db.QueryRowContext(ctx, query, documentKey).Scan(&raw)
	if err == sql.ErrNoRows {
		slog.Debug("no document found, seeding defaults")
		return s.Save(ctx, model.DefaultDocument())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query document: %v", common.ErrPersistence, err)
	}

	var doc model.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode document: %v", common.ErrPersistence, err)
	}

	slog.Debug("loaded document",
		"expenses", len(doc.Expenses),
		"assets", len(doc.Assets),
		"snapshots", len(doc.NetWorthHistory))
	return &doc, nil
}

// Save stamps last_updated and overwrites the stored document as a whole.
// The upsert runs inside a transaction so a failed save leaves the prior
// document untouched: overwrite-or-fail, never a partial write.
func (s *SQLiteStore) Save(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc.LastUpdated = now

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode document: %v", common.ErrPersistence, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", common.ErrPersistence, err)
	}

	const upsert = `
		INSERT INTO documents (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := tx.ExecContext(ctx, upsert, documentKey, string(raw), now); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("%w: failed to write document: %v", common.ErrPersistence, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit document: %v", common.ErrPersistence, err)
	}

	slog.Debug("saved document", "last_updated", now)
	return doc, nil
}

// Clear removes the persisted document. The next Load reseeds defaults.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	const query = `DELETE FROM documents WHERE key = ?`
	if _, err := s.db.ExecContext(ctx, query, documentKey); err != nil {
		return fmt.Errorf("%w: failed to clear document: %v", common.ErrPersistence, err)
	}

	slog.Info("cleared stored document")
	return nil
}
