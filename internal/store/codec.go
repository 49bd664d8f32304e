package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/phone"
)

var errInvalidRecord = errors.New("invalid record")

// record is the persisted shape of a ScamEntry.
type record struct {
	Number      string `json:"number"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

func encode(entries []model.ScamEntry) ([]byte, error) {
	records := make([]record, 0, len(entries))
	for _, e := range entries {
		records = append(records, record{
			Number:      e.Number,
			Category:    e.Category,
			Description: e.Description,
			Timestamp:   e.Timestamp.Format(time.RFC3339Nano),
		})
	}
	return json.Marshal(records)
}

// decode parses a payload into entries. Besides the current record layout it
// accepts the legacy layout, a bare array of number strings, and upgrades it.
func decode(payload []byte) ([]model.ScamEntry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: payload is null", errInvalidRecord)
	}

	entries := make([]model.ScamEntry, 0, len(raw))
	for i, item := range raw {
		entry, err := decodeItem(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return reconcile(entries), nil
}

func decodeItem(item json.RawMessage) (model.ScamEntry, error) {
	item = bytes.TrimSpace(item)
	if len(item) > 0 && item[0] == '"' {
		var number string
		if err := json.Unmarshal(item, &number); err != nil {
			return model.ScamEntry{}, err
		}
		return fromLegacy(number)
	}

	var r record
	if err := json.Unmarshal(item, &r); err != nil {
		return model.ScamEntry{}, err
	}
	if phone.DigitsOnly(r.Number) == "" {
		return model.ScamEntry{}, fmt.Errorf("%w: number %q has no digits", errInvalidRecord, r.Number)
	}
	ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return model.ScamEntry{}, fmt.Errorf("%w: timestamp: %w", errInvalidRecord, err)
	}

	return model.ScamEntry{
		Number:      phone.CanonicalDisplay(r.Number),
		Category:    defaultCategory(r.Category),
		Description: r.Description,
		Timestamp:   ts,
	}, nil
}

func fromLegacy(number string) (model.ScamEntry, error) {
	digits := phone.DigitsOnly(number)
	if digits == "" {
		return model.ScamEntry{}, fmt.Errorf("%w: number %q has no digits", errInvalidRecord, number)
	}
	for _, s := range Seed() {
		if phone.DigitsOnly(s.Number) == digits {
			return s, nil
		}
	}
	return model.ScamEntry{
		Number:    phone.CanonicalDisplay(digits),
		Category:  model.DefaultCategory,
		Timestamp: SeedEpoch,
	}, nil
}

// reconcile drops digit-duplicates, keeping the first occurrence.
func reconcile(entries []model.ScamEntry) []model.ScamEntry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		key := phone.DigitsOnly(e.Number)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

func defaultCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return model.DefaultCategory
	}
	return category
}
