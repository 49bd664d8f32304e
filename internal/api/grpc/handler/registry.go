package handler

import (
	"context"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/phone"
)

// RegistryService defines the registry engine operations exposed over gRPC.
type RegistryService interface {
	Check(ctx context.Context, raw string) model.MatchResult
	Report(ctx context.Context, raw, category, description string) (model.ScamEntry, error)
	Remove(ctx context.Context, raw string, confirmer model.Confirmer) (model.ScamEntry, bool, error)
	Search(ctx context.Context, term string) []model.ScamEntry
	Stats(ctx context.Context) model.Stats
}

var _ RegistryServer = (*Registry)(nil)

// Registry handles gRPC endpoints of the registry service.
type Registry struct {
	registryService RegistryService
	logger          *logger.Logger
}

// NewRegistry creates a new Registry handler.
func NewRegistry(registryService RegistryService, logger *logger.Logger) *Registry {
	return &Registry{
		registryService: registryService,
		logger:          logger,
	}
}

func (h *Registry) Check(ctx context.Context, req *CheckRequest) (*CheckResponse, error) {
	res := h.registryService.Check(ctx, req.Number)
	return &CheckResponse{Matched: res.Matched, Category: res.Category}, nil
}

func (h *Registry) Report(ctx context.Context, req *ReportRequest) (*ReportResponse, error) {
	entry, err := h.registryService.Report(ctx, req.Number, req.Category, req.Description)
	if err != nil {
		h.logger.Debug("Registry handler: report rejected", "number", req.Number, "error", err)
		return nil, handleError(err)
	}

	return &ReportResponse{Entry: toEntry(entry)}, nil
}

// Remove passes the request's confirmation flag to the engine as its Confirmer.
func (h *Registry) Remove(ctx context.Context, req *RemoveRequest) (*RemoveResponse, error) {
	confirmed := model.ConfirmFunc(func(string) bool { return req.Confirmed })

	entry, removed, err := h.registryService.Remove(ctx, req.Number, confirmed)
	if err != nil {
		h.logger.Debug("Registry handler: remove rejected", "number", req.Number, "error", err)
		return nil, handleError(err)
	}
	if !removed {
		return &RemoveResponse{}, nil
	}

	e := toEntry(entry)
	return &RemoveResponse{Removed: true, Entry: &e}, nil
}

func (h *Registry) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	return &SearchResponse{Entries: toEntries(h.registryService.Search(ctx, req.Term))}, nil
}

func (h *Registry) Stats(ctx context.Context, _ *StatsRequest) (*StatsResponse, error) {
	s := h.registryService.Stats(ctx)
	return &StatsResponse{Total: s.Total, ReportedToday: s.ReportedToday}, nil
}

func (h *Registry) Format(_ context.Context, req *FormatRequest) (*FormatResponse, error) {
	formatted, ok := phone.FormatPartial(req.Input)
	return &FormatResponse{Formatted: formatted, Accepted: ok}, nil
}
