package port

import (
	"context"
	"time"

	"growth-agent/internal/core/domain"
)

// BusinessRepository persists business profiles, one per user.
type BusinessRepository interface {
	// GetByUser returns the profile owned by userID, or nil when the user
	// has none.
	GetByUser(ctx context.Context, userID string) (*domain.BusinessProfile, error)
	// GetOrCreate returns the profile owned by userID, creating an empty one
	// when missing.
	GetOrCreate(ctx context.Context, userID string) (*domain.BusinessProfile, error)
	// Update stores the descriptive fields and contact info of profile.
	Update(ctx context.Context, profile *domain.BusinessProfile) error
}

// ContentRepository persists marketing content for a business.
type ContentRepository interface {
	// Create stores content and fills in its ID and CreatedAt.
	Create(ctx context.Context, content *domain.MarketingContent) error
	// ListByBusiness returns the business's content, newest first.
	ListByBusiness(ctx context.Context, businessID string) ([]domain.MarketingContent, error)
	// Approve marks content as approved. It returns ErrNotFound when the
	// content does not belong to the business.
	Approve(ctx context.Context, businessID, contentID string) error
}

// GrowthPlanRepository persists growth plans.
type GrowthPlanRepository interface {
	// GetActive returns the active plan of a business, or nil when none.
	GetActive(ctx context.Context, businessID string) (*domain.GrowthPlan, error)
	// CreateActive stores plan as the active plan of its business. When
	// another active plan already exists that plan is returned unchanged.
	CreateActive(ctx context.Context, plan *domain.GrowthPlan) (*domain.GrowthPlan, error)
}

// UsageStore records anonymous free-tier usage. Implementations must make
// AdmitFreeTier atomic per IP address: concurrent calls for the same IP must
// never insert more than limit records within the window.
type UsageStore interface {
	// AdmitFreeTier counts the records of rec.IPAddress created at or after
	// since and inserts rec only when that count is below limit. It reports
	// whether rec was inserted.
	AdmitFreeTier(ctx context.Context, rec domain.UsageRecord, since time.Time, limit int) (bool, error)
}
