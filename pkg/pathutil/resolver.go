// Package pathutil provides centralized path management for the ledger
// file and its companion history database.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver manages paths for the ledger file, history database, and
// category map.
type PathResolver struct {
	ledgerPath      string
	databasePath    string
	categoryMapPath string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// LedgerPath is the JSON ledger file (e.g. ~/finance/ledger.json)
	LedgerPath string
	// DatabasePath is the SQLite file recording add history
	DatabasePath string
	// CategoryMapPath is the optional YAML category alias map
	CategoryMapPath string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {ledger dir}/.muhasebe/history.db
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(filepath.Dir(config.LedgerPath), ".muhasebe", "history.db")
	}

	return &PathResolver{
		ledgerPath:      config.LedgerPath,
		databasePath:    dbPath,
		categoryMapPath: config.CategoryMapPath,
	}
}

// GetLedgerPath returns the ledger file path.
func (p *PathResolver) GetLedgerPath() string {
	return p.ledgerPath
}

// GetDatabasePath returns the history database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetCategoryMapPath returns the category map path, empty when unset.
func (p *PathResolver) GetCategoryMapPath() string {
	return p.categoryMapPath
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	return p.EnsureDir(filepath.Dir(filePath))
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
