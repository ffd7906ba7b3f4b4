// Package cmd provides CLI commands for muhasebe.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tahadursun/muhasebe/pkg/config"
	"github.com/tahadursun/muhasebe/pkg/ledger"
	"github.com/tahadursun/muhasebe/pkg/ledger/category"
	"github.com/tahadursun/muhasebe/pkg/pathutil"
)

var (
	cfgFile    string
	ledgerFile string
	debug      bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "muhasebe",
	Short: "Record and inspect personal income/expense entries",
	Long: `muhasebe is a small personal-finance CLI that keeps income and
expense entries in a JSON ledger file.

It supports:
- Adding entries with date, category and optional note
- Listing entries filtered by date range and category
- Balance and per-category summary reports
- Add-history statistics backed by SQLite

Example:
  muhasebe add income 1500 maas "nisan maasi" --date 2024-03-05
  muhasebe list --start 2024-03-01 --end 2024-03-31
  muhasebe balance`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&ledgerFile, "file", "", "ledger file path (default from config, ledger.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(statsCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and applies the --file override.
func loadConfig() *config.Config {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if ledgerFile != "" {
		cfg.Ledger.File = ledgerFile
	}

	if err := cfg.Validate("file", "currency"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	return cfg
}

// newResolver builds the path resolver for the current configuration.
func newResolver(cfg *config.Config) *pathutil.PathResolver {
	return pathutil.New(pathutil.Config{
		LedgerPath:      cfg.Ledger.File,
		DatabasePath:    cfg.Ledger.DBPath,
		CategoryMapPath: cfg.Ledger.CategoryMap,
	})
}

// newStore builds the ledger store for the current configuration.
func newStore(resolver *pathutil.PathResolver) ledger.Store {
	return ledger.NewFileStore(resolver.GetLedgerPath())
}

// newCategoryMapper loads the configured category map, or an identity
// mapper when none is configured.
func newCategoryMapper(resolver *pathutil.PathResolver) *category.Mapper {
	mapPath := resolver.GetCategoryMapPath()
	if mapPath == "" {
		return category.Identity()
	}

	mapper, err := category.NewMapper(mapPath)
	exitOnError(err, "failed to load category map")
	return mapper
}
