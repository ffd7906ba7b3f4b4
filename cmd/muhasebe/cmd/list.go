package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tahadursun/muhasebe/pkg/ledger"
)

var (
	listStart    string
	listEnd      string
	listCategory string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries",
	Long: `List ledger entries in insertion order.

Entries can be filtered by an inclusive date range and by category.
The category filter is a case-sensitive exact match.

Example:
  muhasebe list
  muhasebe list --start 2024-03-01 --end 2024-03-31 --category fatura`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&listStart, "start", "", "Start date (YYYY-MM-DD), inclusive")
	listCmd.Flags().StringVar(&listEnd, "end", "", "End date (YYYY-MM-DD), inclusive")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Category filter (exact match)")
}

func runList(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := newStore(newResolver(cfg))

	filter, err := ledger.NewFilter(listStart, listEnd, listCategory)
	exitOnError(err, "invalid filter")

	entries, err := store.Load()
	exitOnError(err, "failed to load ledger")

	matched := ledger.Apply(entries, filter)
	slog.Debug("Loaded ledger", "file", store.Path(), "entries", len(entries), "matched", len(matched))

	if len(matched) == 0 {
		fmt.Println("No entries found.")
		return
	}

	printEntryTable(matched)
}
