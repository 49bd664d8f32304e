package store

import (
	"time"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// SeedEpoch is the creation time stamped on every seed entry.
var SeedEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var seed = [...]struct{ number, category, description string }{
	{"800-111-0000", "Toll-free", "Common toll-free scam pattern"},
	{"888-123-4567", "Tech Support", "Tech support scam"},
	{"877-999-9999", "IRS", "IRS scam pattern"},
	{"866-419-0123", "Tech Support", "Tech support scam"},
	{"855-555-1234", "Government", "Government agency scam"},
	{"900-555-0199", "Premium", "Premium rate number scam"},
	{"844-777-8888", "Banking", "Bank scam pattern"},
	{"833-123-0000", "Lottery", "Lottery scam pattern"},
	{"876-234-5678", "Lottery", "Jamaica area code lottery scam"},
	{"649-999-8888", "Prize", "Prize scam from Caribbean"},
}

// Seed returns a fresh copy of the default registry.
func Seed() []model.ScamEntry {
	out := make([]model.ScamEntry, 0, len(seed))
	for _, s := range seed {
		out = append(out, model.ScamEntry{
			Number:      s.number,
			Category:    s.category,
			Description: s.description,
			Timestamp:   SeedEpoch,
		})
	}
	return out
}
