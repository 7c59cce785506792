package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/anthariksham-labs/kubera/internal/common"
	"github.com/anthariksham-labs/kubera/internal/config"
	"github.com/anthariksham-labs/kubera/internal/ledger"
	"github.com/anthariksham-labs/kubera/internal/storage"
)

// openLedger opens the store at the configured path and wraps it in a
// ledger service. Callers must Close the returned store.
func openLedger() (*ledger.Service, *storage.SQLiteStore, error) {
	path := config.ExpandPath(viper.GetString("storage.path"))
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".local", "share", "kubera", "kubera.db")
	}

	store, err := storage.NewSQLiteStore(path)
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(store), store, nil
}

// displayCurrency returns the configured display currency code.
func displayCurrency() string {
	return viper.GetString("display.currency")
}

// presentable wraps ledger and store failures in user-facing messages;
// main renders the UserError message instead of the raw chain. Errors
// outside the taxonomy pass through untouched.
func presentable(err error) error {
	switch {
	case err == nil:
		return nil
	case common.IsValidation(err):
		return common.NewUserError("Invalid input", err)
	case common.IsPersistence(err):
		return common.NewUserError("Could not access stored data", err)
	default:
		return err
	}
}
