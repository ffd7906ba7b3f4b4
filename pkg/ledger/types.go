// Package ledger provides the entry model, the JSON file store, and the
// pure filter/aggregate functions over an entry sequence.
package ledger

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DateLayout is the calendar date format used across the ledger file and CLI.
const DateLayout = "2006-01-02"

// Type classifies an entry as income or expense.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether the type is one of the two allowed values.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Entry represents a single income or expense record.
// Entries are append-only: once written they are never edited or deleted.
type Entry struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Type     Type    `json:"type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note,omitempty"`
}

// Signed returns the amount with income positive and expense negative.
func (e Entry) Signed() float64 {
	if e.Type == TypeExpense {
		return -e.Amount
	}
	return e.Amount
}

// ValidationError reports invalid user input (amount, type, date, category).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError reports a corrupt or malformed ledger file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse ledger file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseType parses the entry type argument.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Reason: fmt.Sprintf("%q must be %q or %q", s, TypeIncome, TypeExpense)}
	}
	return t, nil
}

// ParseAmount parses the amount argument and checks it is positive.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", s)}
	}
	if amount <= 0 {
		return 0, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	return amount, nil
}

// ParseDate parses a YYYY-MM-DD date argument.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q must be YYYY-MM-DD", s)}
	}
	return d, nil
}

// NewEntry builds a validated entry. The amount is rounded to two decimal
// places so the stored file never accumulates float noise.
func NewEntry(id int64, typ Type, amount float64, category, note string, date time.Time) (Entry, error) {
	if !typ.Valid() {
		return Entry{}, &ValidationError{Field: "type", Reason: fmt.Sprintf("%q must be %q or %q", typ, TypeIncome, TypeExpense)}
	}
	if amount <= 0 {
		return Entry{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if category == "" {
		return Entry{}, &ValidationError{Field: "category", Reason: "must not be empty"}
	}

	return Entry{
		ID:       id,
		Date:     date.Format(DateLayout),
		Type:     typ,
		Amount:   round2(amount),
		Category: category,
		Note:     note,
	}, nil
}

// NextID returns the id for the next entry: max(existing ids)+1, or 1 when
// the ledger is empty. Gaps in the sequence are tolerated.
func NextID(entries []Entry) int64 {
	var max int64
	for _, e := range entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
