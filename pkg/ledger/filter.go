package ledger

import "time"

// Filter selects entries by inclusive date range and exact category.
// Zero-value bounds and an empty category match everything.
type Filter struct {
	Start    time.Time
	End      time.Time
	Category string
}

// NewFilter parses the optional CLI filter arguments.
// Empty strings leave the corresponding bound unset.
func NewFilter(start, end, category string) (Filter, error) {
	var f Filter

	if start != "" {
		d, err := ParseDate(start)
		if err != nil {
			return Filter{}, err
		}
		f.Start = d
	}
	if end != "" {
		d, err := ParseDate(end)
		if err != nil {
			return Filter{}, err
		}
		f.End = d
	}
	f.Category = category

	return f, nil
}

// Matches reports whether the entry passes the filter.
// Category comparison is a case-sensitive exact match.
func (f Filter) Matches(e Entry) bool {
	date, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return false
	}
	if !f.Start.IsZero() && date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && date.After(f.End) {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	return true
}

// Apply returns the matching entries in insertion order.
// A start bound after the end bound matches nothing.
func Apply(entries []Entry, f Filter) []Entry {
	var out []Entry
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Totals holds aggregate sums over an entry sequence.
type Totals struct {
	Income  float64
	Expense float64
}

// Net returns income minus expense.
func (t Totals) Net() float64 {
	return round2(t.Income - t.Expense)
}

// Balance sums income and expense amounts over the entries.
func Balance(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		switch e.Type {
		case TypeIncome:
			t.Income += e.Amount
		case TypeExpense:
			t.Expense += e.Amount
		}
	}
	t.Income = round2(t.Income)
	t.Expense = round2(t.Expense)
	return t
}

// CategorySummary holds the per-category aggregate.
type CategorySummary struct {
	Category string
	Totals
}

// Summarize groups entries by category and sums income and expense per
// group. Categories appear in first-seen order. An empty input yields an
// empty summary.
func Summarize(entries []Entry) []CategorySummary {
	index := make(map[string]int)
	var out []CategorySummary

	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategorySummary{Category: e.Category})
		}
		switch e.Type {
		case TypeIncome:
			out[i].Income += e.Amount
		case TypeExpense:
			out[i].Expense += e.Amount
		}
	}

	for i := range out {
		out[i].Income = round2(out[i].Income)
		out[i].Expense = round2(out[i].Expense)
	}

	return out
}
