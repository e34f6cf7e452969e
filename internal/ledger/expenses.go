package ledger

import (
	"slices"
	"sort"

	"github.com/potluck-dev/potluck/internal/money"
)

// Expenses is a filtered view over the shared expenses of a ledger.
type Expenses []SharedExpense

// Sum totals the expense amounts.
func (e Expenses) Sum() money.Money {
	total := money.Zero()
	for _, expense := range e {
		total = total.Add(expense.Amount)
	}
	return total
}

// WithTag selects the expenses carrying the given tag.
func (e Expenses) WithTag(tag string) Expenses {
	var out Expenses
	for _, expense := range e {
		if slices.Contains(expense.Tags, tag) {
			out = append(out, expense)
		}
	}
	return out
}

// Untagged selects the expenses carrying no tag at all.
func (e Expenses) Untagged() Expenses {
	var out Expenses
	for _, expense := range e {
		if len(expense.Tags) == 0 {
			out = append(out, expense)
		}
	}
	return out
}

// Tags returns every distinct tag, sorted.
func (e Expenses) Tags() []string {
	counts := e.TagCounts()
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// TagCounts returns how many expenses carry each tag.
func (e Expenses) TagCounts() map[string]int {
	counts := make(map[string]int)
	for _, expense := range e {
		for _, tag := range expense.Tags {
			counts[tag]++
		}
	}
	return counts
}
