package model

import "time"

const (
	// DefaultCategory is assigned to entries reported without a category.
	DefaultCategory = "Unknown"
	// DefaultSlotKey is the slot the registry is persisted under.
	DefaultSlotKey = "scamNumbers"
)

// ScamEntry is one registry record. Entries are immutable once created.
type ScamEntry struct {
	Number      string
	Category    string
	Description string
	Timestamp   time.Time
}

// MatchResult is the outcome of a registry lookup.
type MatchResult struct {
	Matched  bool
	Category string
}

// Stats summarizes the registry.
type Stats struct {
	Total         int
	ReportedToday int
}
