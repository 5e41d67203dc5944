package domain

import "time"

// PlanPayload is what the model returned for a plan request. Exactly one of
// Structured or Raw is set: Structured when the text parsed as a JSON
// object, Raw otherwise.
type PlanPayload struct {
	Structured map[string]any
	Raw        string
}

// IsStructured reports whether the payload parsed as structured data.
func (p PlanPayload) IsStructured() bool {
	return p.Structured != nil
}

// GrowthPlan is a weekly marketing plan for a business. Only one plan per
// business is active at a time.
type GrowthPlan struct {
	ID              string         `json:"id"`
	BusinessID      string         `json:"business"`
	WeeklyPlan      map[string]any `json:"weekly_plan"`
	MessagingTone   string         `json:"messaging_tone"`
	TargetPlatforms []string       `json:"target_platforms"`
	DailyActions    []any          `json:"daily_actions"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
}
