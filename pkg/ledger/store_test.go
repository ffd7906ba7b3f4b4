package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "ledger.json"))

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, expected nil for missing file", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load() returned %d entries, expected 0", len(entries))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "ledger.json"))

	want := []Entry{
		{ID: 1, Date: "2024-03-05", Type: TypeIncome, Amount: 1500, Category: "maas", Note: "nisan"},
		{ID: 2, Date: "2024-03-10", Type: TypeExpense, Amount: 250, Category: "fatura"},
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ledger.json")
	store := NewFileStore(path)

	if err := store.Save([]Entry{{ID: 1, Date: "2024-01-01", Type: TypeIncome, Amount: 1, Category: "x"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("ledger file not created: %v", err)
	}
}

func TestSaveEmptyLedgerWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	store := NewFileStore(path)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load() returned %d entries, expected 0", len(entries))
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{broken"},
		{"not an array", `{"id": 1}`},
		{"unknown type", `[{"id":1,"date":"2024-01-01","type":"transfer","amount":10,"category":"x"}]`},
		{"non-positive amount", `[{"id":1,"date":"2024-01-01","type":"income","amount":0,"category":"x"}]`},
		{"impossible date", `[{"id":1,"date":"2024-13-45","type":"income","amount":10,"category":"x"}]`},
		{"wrong date layout", `[{"id":1,"date":"05-03-2024","type":"income","amount":10,"category":"x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ledger.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := NewFileStore(path).Load()
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Load() error = %v, expected *ParseError", err)
			}
		})
	}
}

// Every entry that survives Load must be visible to an unfiltered query;
// nothing loaded may be silently dropped by the date filter.
func TestLoadedEntriesAllMatchEmptyFilter(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "ledger.json"))

	want := []Entry{
		{ID: 1, Date: "2024-03-05", Type: TypeIncome, Amount: 1500, Category: "maas"},
		{ID: 2, Date: "2024-03-10", Type: TypeExpense, Amount: 250, Category: "fatura"},
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := Apply(entries, Filter{})
	if len(got) != len(want) {
		t.Errorf("Apply() with empty filter returned %d entries, expected %d", len(got), len(want))
	}
}

func TestAddPreservesExistingEntries(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "ledger.json"))

	existing := []Entry{
		{ID: 1, Date: "2024-03-05", Type: TypeIncome, Amount: 1500, Category: "maas"},
		{ID: 2, Date: "2024-03-10", Type: TypeExpense, Amount: 250, Category: "fatura"},
	}
	if err := store.Save(existing); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	next := NextID(entries)
	if next != 3 {
		t.Fatalf("NextID() = %d, expected 3", next)
	}

	entries = append(entries, Entry{ID: next, Date: "2024-04-01", Type: TypeExpense, Amount: 40, Category: "market"})
	if err := store.Save(entries); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Load() returned %d entries, expected 3", len(got))
	}
	for i, e := range existing {
		if !reflect.DeepEqual(got[i], e) {
			t.Errorf("existing entry %d changed: got %+v, want %+v", i, got[i], e)
		}
	}
}
