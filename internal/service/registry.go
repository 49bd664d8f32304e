package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/metrics"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/phone"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/query"
)

// Registry owns the in-memory scam number collection.
//
// Mutations are write-ahead: the candidate collection is saved first and only
// replaces the in-memory one when the save succeeds, so a PersistenceError
// leaves the registry exactly as it was.
type Registry struct {
	mu      sync.RWMutex
	entries []model.ScamEntry

	store   model.RegistryStore
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now. Report timestamps and the "today" boundary in
// Stats both come from it.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry hydrates a Registry from store.
func NewRegistry(
	ctx context.Context,
	store model.RegistryStore,
	logger *logger.Logger,
	metrics *metrics.Metrics,
	opts ...Option,
) *Registry {
	r := &Registry{
		store:   store,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.entries = store.Load(ctx)
	r.metrics.SetEntries(len(r.entries))
	r.logger.Info("registry hydrated", "entries", len(r.entries))

	return r
}

// Check looks the number up by its digit sequence. Inputs of any length are
// compared as-is.
func (r *Registry) Check(_ context.Context, raw string) model.MatchResult {
	digits := phone.DigitsOnly(raw)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := model.MatchResult{}
	if i := r.indexOf(digits); i >= 0 {
		result = model.MatchResult{Matched: true, Category: r.entries[i].Category}
	}

	r.metrics.RecordCheck(result.Matched)
	r.logger.Debug("registry check", "digits", digits, "matched", result.Matched)
	return result
}

// Report adds a new entry. Blank category becomes model.DefaultCategory.
func (r *Registry) Report(ctx context.Context, raw, category, description string) (model.ScamEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	digits, err := r.validateNew(raw)
	if err != nil {
		r.metrics.RecordReport(metrics.OutcomeRejected)
		return model.ScamEntry{}, err
	}

	return r.add(ctx, digits, category, description)
}

// ReportWithPrompt validates the number, then asks prompter for the category
// and description. Unanswered or blank prompts fall back to the defaults.
func (r *Registry) ReportWithPrompt(ctx context.Context, raw string, prompter model.Prompter) (model.ScamEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	digits, err := r.validateNew(raw)
	if err != nil {
		r.metrics.RecordReport(metrics.OutcomeRejected)
		return model.ScamEntry{}, err
	}

	var category, description string
	if prompter != nil {
		category, _ = prompter.PromptText("Enter scam category (e.g. Tech Support, IRS, Lottery):")
		description, _ = prompter.PromptText("Enter a description (optional):")
	}

	return r.add(ctx, digits, category, description)
}

// Remove deletes the entry for raw after confirmer agrees. removed is false
// with a nil error when the user declines; the registry is untouched then.
func (r *Registry) Remove(ctx context.Context, raw string, confirmer model.Confirmer) (entry model.ScamEntry, removed bool, err error) {
	digits := phone.DigitsOnly(raw)
	if len(digits) != phone.Length {
		r.metrics.RecordRemoval(metrics.OutcomeRejected)
		return model.ScamEntry{}, false, invalidLength(digits)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(digits)
	if i < 0 {
		r.metrics.RecordRemoval(metrics.OutcomeRejected)
		return model.ScamEntry{}, false, fmt.Errorf("%w: %s", model.ErrNotFound, phone.CanonicalDisplay(digits))
	}
	entry = r.entries[i]

	msg := fmt.Sprintf("Are you sure you want to remove %s from the registry?", entry.Number)
	if confirmer == nil || !confirmer.Confirm(msg) {
		r.metrics.RecordRemoval(metrics.OutcomeCancelled)
		r.logger.Info("removal cancelled", "number", entry.Number)
		return model.ScamEntry{}, false, nil
	}

	next := slices.Delete(slices.Clone(r.entries), i, i+1)
	if err := r.commit(ctx, next); err != nil {
		r.metrics.RecordRemoval(metrics.OutcomeFailed)
		return model.ScamEntry{}, false, err
	}

	r.metrics.RecordRemoval(metrics.OutcomeOK)
	r.logger.Info("number removed", "number", entry.Number)
	return entry, true, nil
}

// Stats reports the registry size and how many entries were created on the
// current calendar day, both taken in the clock's location.
func (r *Registry) Stats(_ context.Context) model.Stats {
	now := r.now()
	y, m, d := now.Date()

	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := model.Stats{Total: len(r.entries)}
	for _, e := range r.entries {
		ey, em, ed := e.Timestamp.In(now.Location()).Date()
		if ey == y && em == m && ed == d {
			stats.ReportedToday++
		}
	}
	return stats
}

// PublishStats pushes the current Stats to the metrics gauges.
func (r *Registry) PublishStats(ctx context.Context) {
	s := r.Stats(ctx)
	r.metrics.SetStats(s.Total, s.ReportedToday)
}

// Search returns entries matching term, newest first.
func (r *Registry) Search(_ context.Context, term string) []model.ScamEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return query.Search(r.entries, term)
}

// Entries returns a copy of the registry in insertion order.
func (r *Registry) Entries(_ context.Context) []model.ScamEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// validateNew must be called with the write lock held.
func (r *Registry) validateNew(raw string) (string, error) {
	digits := phone.DigitsOnly(raw)
	if digits == "" {
		return "", model.ErrEmptyInput
	}
	if len(digits) != phone.Length {
		return "", invalidLength(digits)
	}
	if r.indexOf(digits) >= 0 {
		return "", fmt.Errorf("%w: %s", model.ErrDuplicate, phone.CanonicalDisplay(digits))
	}
	return digits, nil
}

// add must be called with the write lock held and digits already validated.
func (r *Registry) add(ctx context.Context, digits, category, description string) (model.ScamEntry, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = model.DefaultCategory
	}

	entry := model.ScamEntry{
		Number:      phone.CanonicalDisplay(digits),
		Category:    category,
		Description: description,
		Timestamp:   r.now(),
	}

	next := append(slices.Clone(r.entries), entry)
	if err := r.commit(ctx, next); err != nil {
		r.metrics.RecordReport(metrics.OutcomeFailed)
		return model.ScamEntry{}, err
	}

	r.metrics.RecordReport(metrics.OutcomeOK)
	r.logger.Info("number reported", "number", entry.Number, "category", entry.Category)
	return entry, nil
}

func (r *Registry) commit(ctx context.Context, next []model.ScamEntry) error {
	if err := r.store.Save(ctx, next); err != nil {
		r.logger.Error("failed to persist registry", "error", err)
		return fmt.Errorf("failed to save registry: %w", err)
	}
	r.entries = next
	r.metrics.SetEntries(len(next))
	return nil
}

func (r *Registry) indexOf(digits string) int {
	return slices.IndexFunc(r.entries, func(e model.ScamEntry) bool {
		return phone.DigitsOnly(e.Number) == digits
	})
}

func invalidLength(digits string) error {
	return fmt.Errorf("%w: got %d", model.ErrInvalidLength, len(digits))
}
