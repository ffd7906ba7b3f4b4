package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tahadursun/muhasebe/pkg/ledger"
)

// AddRecord represents one recorded add operation.
type AddRecord struct {
	ID         int64
	LedgerFile string
	EntryID    int64
	EntryDate  string
	EntryType  string
	Category   string
	Amount     float64
	RecordedAt time.Time
}

// History manages add-history operations.
type History struct {
	conn *Connection
}

// NewHistory creates a new History instance.
func NewHistory(conn *Connection) *History {
	return &History{conn: conn}
}

// RecordAdd records an add operation.
// If the record already exists (same ledger_file + entry_id), it updates it.
func (h *History) RecordAdd(e ledger.Entry, ledgerFile string) error {
	query := `
		INSERT INTO add_history (ledger_file, entry_id, entry_date, entry_type, category, amount)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(ledger_file, entry_id) DO UPDATE SET
			entry_date = excluded.entry_date,
			entry_type = excluded.entry_type,
			category = excluded.category,
			amount = excluded.amount,
			recorded_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query,
		ledgerFile,
		e.ID,
		e.Date,
		string(e.Type),
		e.Category,
		e.Amount,
	)

	if err != nil {
		return fmt.Errorf("failed to record add: %w", err)
	}

	return nil
}

// GetRecord retrieves an add record by ledger file and entry id.
// Returns nil when no record exists.
func (h *History) GetRecord(ledgerFile string, entryID int64) (*AddRecord, error) {
	query := `
		SELECT id, ledger_file, entry_id, entry_date, entry_type, category, amount, recorded_at
		FROM add_history
		WHERE ledger_file = ? AND entry_id = ?
	`

	var record AddRecord
	err := h.conn.QueryRow(query, ledgerFile, entryID).Scan(
		&record.ID,
		&record.LedgerFile,
		&record.EntryID,
		&record.EntryDate,
		&record.EntryType,
		&record.Category,
		&record.Amount,
		&record.RecordedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get add record: %w", err)
	}

	return &record, nil
}

// Stats represents add-history statistics.
type Stats struct {
	TotalAdds   int
	IncomeAdds  int
	ExpenseAdds int
	LastAdd     sql.NullString
}

// GetStats retrieves add-history statistics.
func (h *History) GetStats() (*Stats, error) {
	var stats Stats

	err := h.conn.QueryRow(`SELECT COUNT(*) FROM add_history`).Scan(&stats.TotalAdds)
	if err != nil {
		return nil, fmt.Errorf("failed to get add count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT COUNT(*) FROM add_history WHERE entry_type = 'income'`).Scan(&stats.IncomeAdds)
	if err != nil {
		return nil, fmt.Errorf("failed to get income add count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT COUNT(*) FROM add_history WHERE entry_type = 'expense'`).Scan(&stats.ExpenseAdds)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense add count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT MAX(recorded_at) FROM add_history`).Scan(&stats.LastAdd)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last add time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value.
func (h *History) GetMetadata(key string) (string, error) {
	query := `SELECT value FROM history_metadata WHERE key = ?`

	var value string
	err := h.conn.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	return value, nil
}

// SetMetadata sets a metadata value.
func (h *History) SetMetadata(key, value string) error {
	query := `
		INSERT INTO history_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
