package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tahadursun/muhasebe/pkg/db"
	"github.com/tahadursun/muhasebe/pkg/ledger"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display ledger statistics",
	Long: `Display statistics about the ledger file and the recorded
add history.

Shows:
- Number of entries by type in the ledger file
- Total number of recorded add operations
- Last recorded add timestamp

Example:
  muhasebe stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	resolver := newResolver(cfg)
	store := newStore(resolver)

	entries, err := store.Load()
	exitOnError(err, "failed to load ledger")

	var income, expense int
	for _, e := range entries {
		if e.Type == ledger.TypeIncome {
			income++
		} else {
			expense++
		}
	}

	fmt.Println("\n=== Ledger Statistics ===")
	fmt.Printf("Ledger file:       %s\n", store.Path())
	fmt.Printf("Total entries:     %d\n", len(entries))
	fmt.Printf("Income entries:    %d\n", income)
	fmt.Printf("Expense entries:   %d\n", expense)

	dbPath := resolver.GetDatabasePath()
	slog.Debug("Opening history database", "path", dbPath)

	conn, err := db.Open(dbPath)
	if err != nil {
		slog.Warn("Add history unavailable", "error", err)
		fmt.Println()
		return
	}
	defer conn.Close()

	history := db.NewHistory(conn)
	stats, err := history.GetStats()
	exitOnError(err, "failed to get history statistics")

	fmt.Printf("Recorded adds:     %d\n", stats.TotalAdds)
	fmt.Printf("  income:          %d\n", stats.IncomeAdds)
	fmt.Printf("  expense:         %d\n", stats.ExpenseAdds)

	if stats.LastAdd.Valid {
		fmt.Printf("Last recorded add: %s\n", stats.LastAdd.String)
	} else {
		fmt.Printf("Last recorded add: (never)\n")
	}

	fmt.Println()
}
