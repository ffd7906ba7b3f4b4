package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tahadursun/muhasebe/pkg/ledger"
)

var (
	balanceStart    string
	balanceEnd      string
	balanceCategory string
)

// balanceCmd represents the balance command.
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show income, expense and net totals",
	Long: `Show the income sum, expense sum and net balance
(income minus expense) over the ledger, or over a filtered subset.

Example:
  muhasebe balance
  muhasebe balance --start 2024-03-01 --end 2024-03-31`,
	Run: runBalance,
}

func init() {
	balanceCmd.Flags().StringVar(&balanceStart, "start", "", "Start date (YYYY-MM-DD), inclusive")
	balanceCmd.Flags().StringVar(&balanceEnd, "end", "", "End date (YYYY-MM-DD), inclusive")
	balanceCmd.Flags().StringVar(&balanceCategory, "category", "", "Category filter (exact match)")
}

func runBalance(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := newStore(newResolver(cfg))

	filter, err := ledger.NewFilter(balanceStart, balanceEnd, balanceCategory)
	exitOnError(err, "invalid filter")

	entries, err := store.Load()
	exitOnError(err, "failed to load ledger")

	totals := ledger.Balance(ledger.Apply(entries, filter))

	currency := cfg.Ledger.Currency
	fmt.Printf("Income:  %12.2f %s\n", totals.Income, currency)
	fmt.Printf("Expense: %12.2f %s\n", totals.Expense, currency)
	fmt.Printf("Net:     %12.2f %s\n", totals.Net(), currency)
}
