package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairclaim/complaint-api/internal/entity"
)

// ToolUsageSummary aggregates recorded submissions for one tool.
type ToolUsageSummary struct {
	Tool          string  `json:"tool"`
	Submissions   int     `json:"submissions"`
	EligibleCount int     `json:"eligible_count"`
	EligibleRate  float64 `json:"eligible_rate"`
}

// JurisdictionCount is the submission count per jurisdiction.
type JurisdictionCount struct {
	Jurisdiction string `json:"jurisdiction"`
	Submissions  int    `json:"submissions"`
}

// EventsRepository persists anonymous tool-usage events and serves the
// admin analytics aggregates.
type EventsRepository interface {
	Insert(ctx context.Context, event *entity.ToolEvent) error
	SummaryByTool(ctx context.Context, since time.Time) ([]ToolUsageSummary, error)
	CountByJurisdiction(ctx context.Context, since time.Time) ([]JurisdictionCount, error)
}

// PGXEventsRepository implements EventsRepository with pgx.
type PGXEventsRepository struct {
	pool pgxPool
}

// NewPGXEventsRepository instantiates an events repository.
func NewPGXEventsRepository(pool *pgxpool.Pool) *PGXEventsRepository {
	return &PGXEventsRepository{pool: pool}
}

// Insert stores one tool event.
func (r *PGXEventsRepository) Insert(ctx context.Context, event *entity.ToolEvent) error {
	if event == nil {
		return fmt.Errorf("event payload is nil")
	}

	_, err := r.pool.Exec(ctx, `
        INSERT INTO tool_events (tool, jurisdiction, category, eligible)
        VALUES ($1, $2, $3, $4)
    `, event.Tool, event.Jurisdiction, nilIfEmpty(event.Category), event.Eligible)
	if err != nil {
		return fmt.Errorf("insert tool event: %w", err)
	}
	return nil
}

// SummaryByTool aggregates submissions and eligibility rates per tool
// since the given time.
func (r *PGXEventsRepository) SummaryByTool(ctx context.Context, since time.Time) ([]ToolUsageSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT tool,
               COUNT(*) AS submissions,
               COUNT(*) FILTER (WHERE eligible) AS eligible_count
        FROM tool_events
        WHERE created_at >= $1
        GROUP BY tool
        ORDER BY submissions DESC
    `, since)
	if err != nil {
		return nil, fmt.Errorf("summarise tool events: %w", err)
	}
	defer rows.Close()

	var summaries []ToolUsageSummary
	for rows.Next() {
		var s ToolUsageSummary
		if err := rows.Scan(&s.Tool, &s.Submissions, &s.EligibleCount); err != nil {
			return nil, fmt.Errorf("scan tool summary row: %w", err)
		}
		if s.Submissions > 0 {
			s.EligibleRate = float64(s.EligibleCount) / float64(s.Submissions)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tool summaries: %w", err)
	}
	return summaries, nil
}

// CountByJurisdiction counts submissions per jurisdiction since the given
// time.
func (r *PGXEventsRepository) CountByJurisdiction(ctx context.Context, since time.Time) ([]JurisdictionCount, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT jurisdiction, COUNT(*) AS submissions
        FROM tool_events
        WHERE created_at >= $1
        GROUP BY jurisdiction
        ORDER BY submissions DESC
    `, since)
	if err != nil {
		return nil, fmt.Errorf("count events by jurisdiction: %w", err)
	}
	defer rows.Close()

	var counts []JurisdictionCount
	for rows.Next() {
		var c JurisdictionCount
		if err := rows.Scan(&c.Jurisdiction, &c.Submissions); err != nil {
			return nil, fmt.Errorf("scan jurisdiction count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jurisdiction counts: %w", err)
	}
	return counts, nil
}

func nilIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
