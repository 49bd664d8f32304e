package handler

import (
	"time"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// Entry is the wire form of a registry entry.
type Entry struct {
	Number      string `json:"number"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type CheckRequest struct {
	Number string `json:"number"`
}

type CheckResponse struct {
	Matched  bool   `json:"matched"`
	Category string `json:"category,omitempty"`
}

type ReportRequest struct {
	Number      string `json:"number"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type ReportResponse struct {
	Entry Entry `json:"entry"`
}

// RemoveRequest deletes Number only when Confirmed is set; otherwise the call
// is a no-op answered with Removed false.
type RemoveRequest struct {
	Number    string `json:"number"`
	Confirmed bool   `json:"confirmed"`
}

type RemoveResponse struct {
	Removed bool   `json:"removed"`
	Entry   *Entry `json:"entry,omitempty"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

type SearchResponse struct {
	Entries []Entry `json:"entries"`
}

type StatsRequest struct{}

type StatsResponse struct {
	Total         int `json:"total"`
	ReportedToday int `json:"reported_today"`
}

// FormatRequest carries raw keystrokes of a number being typed.
type FormatRequest struct {
	Input string `json:"input"`
}

// FormatResponse holds the partially formatted number. Accepted is false when
// the input has more than ten digits and the keystroke should be rejected.
type FormatResponse struct {
	Formatted string `json:"formatted"`
	Accepted  bool   `json:"accepted"`
}

func toEntry(e model.ScamEntry) Entry {
	return Entry{
		Number:      e.Number,
		Category:    e.Category,
		Description: e.Description,
		Timestamp:   e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func toEntries(entries []model.ScamEntry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntry(e))
	}
	return out
}
