package usecase

import (
	"context"
	"fmt"

	"growth-agent/internal/core/catalog"
	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
)

// GrowthPlanComposer turns one plan generation into a GrowthPlan. Output
// that is not a JSON object is replaced by the catalog's fallback plan.
type GrowthPlanComposer struct {
	generator port.Generator
	catalog   *catalog.Catalog
}

func NewGrowthPlanComposer(generator port.Generator, cat *catalog.Catalog) *GrowthPlanComposer {
	if cat == nil {
		cat = catalog.Default()
	}
	return &GrowthPlanComposer{generator: generator, catalog: cat}
}

// Compose requests a plan for biz. Generation failures are returned; only
// unparseable output falls back.
func (c *GrowthPlanComposer) Compose(ctx context.Context, biz domain.BusinessContext) (domain.GrowthPlan, error) {
	payload, err := c.generator.GeneratePlan(ctx, biz)
	if err != nil {
		return domain.GrowthPlan{}, err
	}

	weekly := payload.Structured
	if !payload.IsStructured() {
		weekly = c.catalog.FallbackPlan()
	}
	actions, _ := weekly["daily_actions"].([]any)
	if actions == nil {
		actions = []any{}
	}
	return domain.GrowthPlan{
		WeeklyPlan:      weekly,
		MessagingTone:   c.catalog.GrowthPlan.MessagingTone,
		TargetPlatforms: c.catalog.TargetPlatforms(),
		DailyActions:    actions,
		IsActive:        true,
	}, nil
}

// GrowthPlanUseCase serves a user's active plan, composing it on first
// access.
type GrowthPlanUseCase struct {
	businesses port.BusinessRepository
	plans      port.GrowthPlanRepository
	composer   *GrowthPlanComposer
}

func NewGrowthPlanUseCase(businesses port.BusinessRepository, plans port.GrowthPlanRepository, composer *GrowthPlanComposer) *GrowthPlanUseCase {
	return &GrowthPlanUseCase{businesses: businesses, plans: plans, composer: composer}
}

var _ port.GrowthPlanUseCase = (*GrowthPlanUseCase)(nil)

// Get returns the active plan of the user's business. When none exists a
// plan is composed and stored; if another request stored one first, that
// plan wins. A failed generation stores nothing.
func (u *GrowthPlanUseCase) Get(ctx context.Context, userID string) (*domain.GrowthPlan, error) {
	profile, err := u.businesses.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	plan, err := u.plans.GetActive(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		return plan, nil
	}

	composed, err := u.composer.Compose(ctx, profile.BusinessContext)
	if err != nil {
		return nil, fmt.Errorf("compose growth plan: %w", err)
	}
	composed.BusinessID = profile.ID
	return u.plans.CreateActive(ctx, &composed)
}
