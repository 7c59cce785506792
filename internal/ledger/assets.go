package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anthariksham-labs/kubera/internal/common"
	"github.com/anthariksham-labs/kubera/internal/model"
)

// AddAsset creates a new asset. Portfolio assets always start with a zero
// balance and empty holdings, whatever balance was supplied; their value is
// derived from holdings. Every other type needs a parseable balance.
func (s *Service) AddAsset(ctx context.Context, name string, assetType model.AssetType, balance string) (*model.Asset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: asset name is required", common.ErrValidation)
	}
	if assetType == "" {
		return nil, fmt.Errorf("%w: asset type is required", common.ErrValidation)
	}

	asset := model.Asset{
		ID:   uuid.NewString(),
		Name: name,
		Type: assetType,
	}
	if assetType == model.AssetTypePortfolio {
		asset.Balance = decimal.Zero
		asset.Holdings = []model.Holding{}
	} else {
		bal, err := decimal.NewFromString(strings.TrimSpace(balance))
		if err != nil {
			return nil, fmt.Errorf("%w: balance must be a number", common.ErrValidation)
		}
		asset.Balance = bal
	}

	_, err := s.mutate(ctx, func(doc *model.Document) error {
		doc.Assets = append(doc.Assets, asset)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("added asset", "id", asset.ID, "name", name, "type", assetType)
	return &asset, nil
}

// UpdateAsset shallow-merges the set fields of patch into the asset with
// the given id. Fields the patch leaves nil keep their stored values. An
// unknown id is a no-op.
func (s *Service) UpdateAsset(ctx context.Context, id string, patch model.AssetPatch) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: asset id is required", common.ErrValidation)
	}

	_, err := s.mutate(ctx, func(doc *model.Document) error {
		asset := doc.AssetByID(id)
		if asset == nil {
			slog.Debug("update of unknown asset ignored", "id", id)
			return nil
		}
		patch.Apply(asset)
		return nil
	})
	return err
}

// DeleteAsset removes the asset with the given id; unknown ids are no-ops.
func (s *Service) DeleteAsset(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(doc *model.Document) error {
		kept := doc.Assets[:0]
		for _, a := range doc.Assets {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		doc.Assets = kept
		return nil
	})
	return err
}

// AddHolding appends a purchase lot to the first Portfolio asset, creating
// an implicit "Stocks" portfolio when the document has none. Tickers are
// normalized to upper case. Lots are never merged: a second lot with the
// same ticker stays a separate entry.
func (s *Service) AddHolding(ctx context.Context, ticker, shares, purchasePrice string) (*model.Holding, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", common.ErrValidation)
	}
	sh, err := parsePositive(shares, "shares")
	if err != nil {
		return nil, err
	}
	price, err := parsePositive(purchasePrice, "purchase price")
	if err != nil {
		return nil, err
	}

	holding := model.Holding{Ticker: ticker, Shares: sh, PurchasePrice: price}

	_, err = s.mutate(ctx, func(doc *model.Document) error {
		portfolio := doc.FirstPortfolio()
		if portfolio == nil {
			doc.Assets = append(doc.Assets, model.Asset{
				ID:       uuid.NewString(),
				Name:     "Stocks",
				Type:     model.AssetTypePortfolio,
				Balance:  decimal.Zero,
				Holdings: []model.Holding{},
			})
			portfolio = &doc.Assets[len(doc.Assets)-1]
			slog.Info("created implicit portfolio", "id", portfolio.ID)
		}
		portfolio.Holdings = append(portfolio.Holdings, holding)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("added holding", "ticker", ticker, "shares", sh)
	return &holding, nil
}
