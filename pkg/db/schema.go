// Package db provides SQLite storage for the add-history companion
// database. The JSON ledger file stays the source of truth; this database
// only records when entries were added, for the stats command.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Add history table
-- One row per recorded "add" operation against a ledger file
CREATE TABLE IF NOT EXISTS add_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ledger_file TEXT NOT NULL,         -- Path to the ledger JSON file
    entry_id INTEGER NOT NULL,         -- Entry id within the ledger file
    entry_date TEXT NOT NULL,          -- YYYY-MM-DD
    entry_type TEXT NOT NULL,          -- 'income' or 'expense'
    category TEXT NOT NULL,
    amount REAL NOT NULL,
    recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(ledger_file, entry_id)
);

CREATE INDEX IF NOT EXISTS idx_add_history_file_entry
    ON add_history(ledger_file, entry_id);

CREATE INDEX IF NOT EXISTS idx_add_history_date
    ON add_history(entry_date);

-- History metadata table
-- Stores key-value metadata about the history database
CREATE TABLE IF NOT EXISTS history_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
