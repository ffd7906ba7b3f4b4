package cmd

import (
	"fmt"
	"strings"

	"github.com/tahadursun/muhasebe/pkg/ledger"
)

// printEntryTable prints entries as an aligned table with a header row.
func printEntryTable(entries []ledger.Entry) {
	headers := []string{"ID", "Date", "Type", "Amount", "Category", "Note"}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.Date,
			string(e.Type),
			fmt.Sprintf("%.2f", e.Amount),
			e.Category,
			e.Note,
		})
	}

	printTable(headers, rows)
}

// printTable renders rows with per-column widths, " | " separators and a
// header divider.
func printTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(row []string) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		fmt.Println(strings.Join(cells, " | "))
	}

	printRow(headers)

	dividers := make([]string, len(widths))
	for i, w := range widths {
		dividers[i] = strings.Repeat("-", w)
	}
	fmt.Println(strings.Join(dividers, "-+-"))

	for _, row := range rows {
		printRow(row)
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
