package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDatabasePath(t *testing.T) {
	resolver := New(Config{LedgerPath: "/home/user/finance/ledger.json"})

	want := filepath.Join("/home/user/finance", ".muhasebe", "history.db")
	if got := resolver.GetDatabasePath(); got != want {
		t.Errorf("GetDatabasePath() = %q, expected %q", got, want)
	}
}

func TestExplicitDatabasePath(t *testing.T) {
	resolver := New(Config{
		LedgerPath:   "ledger.json",
		DatabasePath: "/var/lib/muhasebe/history.db",
	})

	if got := resolver.GetDatabasePath(); got != "/var/lib/muhasebe/history.db" {
		t.Errorf("GetDatabasePath() = %q", got)
	}
}

func TestEnsureParentDir(t *testing.T) {
	resolver := New(Config{LedgerPath: "ledger.json"})

	path := filepath.Join(t.TempDir(), "a", "b", "ledger.json")
	if err := resolver.EnsureParentDir(path); err != nil {
		t.Fatalf("EnsureParentDir() error = %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Errorf("parent directory not created: %v", err)
	}
}

func TestFileExists(t *testing.T) {
	resolver := New(Config{LedgerPath: "ledger.json"})

	path := filepath.Join(t.TempDir(), "ledger.json")
	if resolver.FileExists(path) {
		t.Error("FileExists() = true for missing file")
	}

	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if !resolver.FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
}
