package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/tahadursun/muhasebe/pkg/db"
	"github.com/tahadursun/muhasebe/pkg/ledger"
)

var addDate string

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add <income|expense> <amount> <category> [note]",
	Short: "Add an income or expense entry",
	Long: `Add an income or expense entry to the ledger file.

The amount must be a positive number. The date defaults to today and can be
overridden with --date. The new entry is appended; existing entries are
never changed.

Example:
  muhasebe add income 1500 maas "nisan maasi" --date 2024-03-05
  muhasebe add expense 250 fatura`,
	Args: cobra.RangeArgs(3, 4),
	Run:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Entry date (YYYY-MM-DD) (default: today)")
}

func runAdd(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	resolver := newResolver(cfg)
	store := newStore(resolver)
	mapper := newCategoryMapper(resolver)

	typ, err := ledger.ParseType(args[0])
	exitOnError(err, "invalid entry")

	amount, err := ledger.ParseAmount(args[1])
	exitOnError(err, "invalid entry")

	date := time.Now()
	if addDate != "" {
		date, err = ledger.ParseDate(addDate)
		exitOnError(err, "invalid entry")
	}

	categoryName := mapper.Canonical(args[2])

	note := ""
	if len(args) == 4 {
		note = args[3]
	}

	entries, err := store.Load()
	exitOnError(err, "failed to load ledger")

	entry, err := ledger.NewEntry(ledger.NextID(entries), typ, amount, categoryName, note, date)
	exitOnError(err, "invalid entry")

	entries = append(entries, entry)
	err = store.Save(entries)
	exitOnError(err, "failed to save ledger")

	slog.Debug("Entry persisted", "id", entry.ID, "file", store.Path())

	recordHistory(resolver.GetDatabasePath(), entry, store.Path())

	fmt.Printf("Recorded: %d - %s %s %s %.2f %s\n",
		entry.ID, entry.Date, entry.Type, entry.Category, entry.Amount, cfg.Ledger.Currency)
}

// recordHistory records the add in the history database. The ledger file is
// the source of truth, so history failures only warn.
func recordHistory(dbPath string, entry ledger.Entry, ledgerFile string) {
	conn, err := db.Open(dbPath)
	if err != nil {
		slog.Warn("Skipping add history", "error", err)
		return
	}
	defer conn.Close()

	history := db.NewHistory(conn)
	if err := history.RecordAdd(entry, ledgerFile); err != nil {
		slog.Warn("Failed to record add history", "error", err)
	}
}
