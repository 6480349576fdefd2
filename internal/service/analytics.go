package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fairclaim/complaint-api/internal/entity"
	"github.com/fairclaim/complaint-api/internal/repository"
)

// ErrAnalyticsDisabled is returned when no events repository is
// configured (the service runs without a database).
var ErrAnalyticsDisabled = errors.New("analytics persistence is not configured")

// AnalyticsService records anonymous tool submissions and serves the
// admin aggregates. A nil repository disables recording silently: the
// free tools must keep working without a database.
type AnalyticsService struct {
	events repository.EventsRepository
}

// NewAnalyticsService constructs an AnalyticsService. repo may be nil.
func NewAnalyticsService(events repository.EventsRepository) *AnalyticsService {
	return &AnalyticsService{events: events}
}

// Record stores one tool event. Failures are logged, never surfaced: a
// broken analytics store must not break a tool response.
func (s *AnalyticsService) Record(ctx context.Context, tool, jurisdiction, category string, eligible *bool) {
	if s.events == nil {
		return
	}
	event := &entity.ToolEvent{
		Tool:         tool,
		Jurisdiction: jurisdiction,
		Category:     category,
		Eligible:     eligible,
	}
	if err := s.events.Insert(ctx, event); err != nil {
		log.Printf("record tool event failed tool=%s err=%v", tool, err)
	}
}

// UsageSummary is the admin analytics aggregate for one time range.
type UsageSummary struct {
	Since         time.Time                      `json:"since"`
	Tools         []repository.ToolUsageSummary  `json:"tools"`
	Jurisdictions []repository.JurisdictionCount `json:"jurisdictions"`
}

// Summary aggregates recorded events since the given time.
func (s *AnalyticsService) Summary(ctx context.Context, since time.Time) (*UsageSummary, error) {
	if s.events == nil {
		return nil, ErrAnalyticsDisabled
	}

	tools, err := s.events.SummaryByTool(ctx, since)
	if err != nil {
		return nil, err
	}
	jurisdictions, err := s.events.CountByJurisdiction(ctx, since)
	if err != nil {
		return nil, err
	}

	return &UsageSummary{Since: since, Tools: tools, Jurisdictions: jurisdictions}, nil
}
