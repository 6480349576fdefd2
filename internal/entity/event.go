package entity

import (
	"time"

	"github.com/google/uuid"
)

// ToolEvent is one anonymous tool submission recorded for the admin
// analytics dashboard. It carries no user-supplied facts, only which tool
// ran, where, and whether the outcome was eligible.
type ToolEvent struct {
	ID           uuid.UUID `json:"id"`
	Tool         string    `json:"tool"`
	Jurisdiction string    `json:"jurisdiction"`
	Category     string    `json:"category,omitempty"`
	Eligible     *bool     `json:"eligible,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
