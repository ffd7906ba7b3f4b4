package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tahadursun/muhasebe/pkg/ledger"
)

var (
	summarizeStart    string
	summarizeEnd      string
	summarizeCategory string
)

// summarizeCmd represents the summarize command.
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Show per-category totals",
	Long: `Group entries by category and report income total, expense total
and net per category. Categories appear in the order they were first seen
in the ledger. An optional date range and category filter limit the
entries considered.

Example:
  muhasebe summarize
  muhasebe summarize --start 2024-01-01 --end 2024-12-31
  muhasebe summarize --category market`,
	Run: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeStart, "start", "", "Start date (YYYY-MM-DD), inclusive")
	summarizeCmd.Flags().StringVar(&summarizeEnd, "end", "", "End date (YYYY-MM-DD), inclusive")
	summarizeCmd.Flags().StringVar(&summarizeCategory, "category", "", "Category filter (exact match)")
}

func runSummarize(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	resolver := newResolver(cfg)
	store := newStore(resolver)
	mapper := newCategoryMapper(resolver)

	filter, err := ledger.NewFilter(summarizeStart, summarizeEnd, summarizeCategory)
	exitOnError(err, "invalid filter")

	entries, err := store.Load()
	exitOnError(err, "failed to load ledger")

	matched := ledger.Apply(entries, filter)
	for i := range matched {
		matched[i].Category = mapper.Canonical(matched[i].Category)
	}

	summary := ledger.Summarize(matched)
	if len(summary) == 0 {
		fmt.Println("No entries found.")
		return
	}

	headers := []string{"Category", "Income", "Expense", "Net"}
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{
			s.Category,
			fmt.Sprintf("%.2f", s.Income),
			fmt.Sprintf("%.2f", s.Expense),
			fmt.Sprintf("%.2f", s.Net()),
		})
	}

	printTable(headers, rows)
}
