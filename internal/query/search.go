// Package query filters and orders registry entries for display.
package query

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// Search returns the entries whose number, category or description contains
// term, ignoring case, most recent first. An empty term matches every entry.
// The input slice is not modified.
func Search(entries []model.ScamEntry, term string) []model.ScamEntry {
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]model.ScamEntry, 0, len(entries))
	for _, e := range entries {
		if needle == "" || matches(fold, e, needle) {
			out = append(out, e)
		}
	}

	sortByRecency(out)
	return out
}

// SortByRecency returns a copy of entries ordered newest first. Entries with
// equal timestamps keep their relative order.
func SortByRecency(entries []model.ScamEntry) []model.ScamEntry {
	out := slices.Clone(entries)
	sortByRecency(out)
	return out
}

func sortByRecency(entries []model.ScamEntry) {
	slices.SortStableFunc(entries, func(a, b model.ScamEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}

func matches(fold cases.Caser, e model.ScamEntry, needle string) bool {
	for _, field := range [...]string{e.Number, e.Category, e.Description} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}
