package port

import (
	"context"

	"growth-agent/internal/core/domain"
)

// ContentUseCase is the primary port for content generation and the
// content approval workflow.
type ContentUseCase interface {
	// Generate admits the caller through the free-tier gate, generates
	// content for req and structures it. It returns ErrRateLimitExceeded
	// when the caller is denied. A backend failure is reported in the
	// result with Success false, not as an error.
	Generate(ctx context.Context, caller domain.Caller, req domain.GenerationRequest) (*domain.GenerationResult, error)
	// List returns the content of the user's business, newest first.
	List(ctx context.Context, userID string) ([]domain.MarketingContent, error)
	// Create stores hand-written content for the user's business.
	Create(ctx context.Context, userID string, content domain.MarketingContent) (*domain.MarketingContent, error)
	// Approve marks content of the user's business as approved.
	Approve(ctx context.Context, userID, contentID string) error
}

// ProfileUseCase manages the business profile of a user.
type ProfileUseCase interface {
	// Get returns the user's profile, creating an empty one when missing.
	Get(ctx context.Context, userID string) (*domain.BusinessProfile, error)
	// Update replaces the descriptive fields and contact info of the
	// user's profile.
	Update(ctx context.Context, userID string, upd domain.BusinessProfile) (*domain.BusinessProfile, error)
}

// GrowthPlanUseCase returns a user's active growth plan.
type GrowthPlanUseCase interface {
	// Get returns the active plan, composing and storing one on first
	// access.
	Get(ctx context.Context, userID string) (*domain.GrowthPlan, error)
}
