package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

var base = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func fixture() []model.ScamEntry {
	return []model.ScamEntry{
		{Number: "800-111-0000", Category: "Toll-free", Description: "Common toll-free scam pattern", Timestamp: base},
		{Number: "888-123-4567", Category: "Tech Support", Description: "Tech support scam", Timestamp: base.Add(2 * time.Hour)},
		{Number: "877-999-9999", Category: "IRS", Description: "IRS scam pattern", Timestamp: base},
		{Number: "555-123-4567", Category: "Unknown", Description: "", Timestamp: base.Add(time.Hour)},
	}
}

func numbers(entries []model.ScamEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Number)
	}
	return out
}

func TestSearch_EmptyTermReturnsAllByRecency(t *testing.T) {
	got := Search(fixture(), "")

	require.Len(t, got, 4)
	assert.Equal(t, []string{"888-123-4567", "555-123-4567", "800-111-0000", "877-999-9999"}, numbers(got))
}

func TestSearch_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "category case-insensitive", term: "tech SUPPORT", want: []string{"888-123-4567"}},
		{name: "description", term: "pattern", want: []string{"800-111-0000", "877-999-9999"}},
		{name: "display number with hyphen", term: "123-45", want: []string{"888-123-4567", "555-123-4567"}},
		{name: "digits across hyphen do not match", term: "1234567", want: []string{}},
		{name: "no match", term: "lottery", want: []string{}},
		{name: "matches in any field", term: "irs", want: []string{"877-999-9999"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numbers(Search(fixture(), tt.term)))
		})
	}
}

func TestSearch_ResultIsSubsetAndMatches(t *testing.T) {
	all := fixture()
	for _, term := range []string{"s", "SCAM", "8", "-", "unknown"} {
		got := Search(all, term)
		for _, e := range got {
			assert.Contains(t, all, e)
		}
		assert.LessOrEqual(t, len(got), len(all))
	}
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	before := numbers(in)

	_ = Search(in, "")

	assert.Equal(t, before, numbers(in))
}

func TestSortByRecency_StableTies(t *testing.T) {
	in := []model.ScamEntry{
		{Number: "a", Timestamp: base},
		{Number: "b", Timestamp: base},
		{Number: "c", Timestamp: base.Add(time.Minute)},
		{Number: "d", Timestamp: base},
	}

	assert.Equal(t, []string{"c", "a", "b", "d"}, numbers(SortByRecency(in)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, numbers(in))
}
