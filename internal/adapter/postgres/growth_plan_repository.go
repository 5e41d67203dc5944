package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
)

// GrowthPlanRepository implements port.GrowthPlanRepository. At most one
// plan per business is active, enforced by a partial unique index.
type GrowthPlanRepository struct {
	pool *pgxpool.Pool
}

func NewGrowthPlanRepository(pool *pgxpool.Pool) *GrowthPlanRepository {
	return &GrowthPlanRepository{pool: pool}
}

var _ port.GrowthPlanRepository = (*GrowthPlanRepository)(nil)

const planColumns = `id, business_id, weekly_plan, messaging_tone, target_platforms, daily_actions, is_active, created_at`

func scanPlan(row pgx.Row) (*domain.GrowthPlan, error) {
	var p domain.GrowthPlan
	err := row.Scan(
		&p.ID,
		&p.BusinessID,
		&p.WeeklyPlan,
		&p.MessagingTone,
		&p.TargetPlatforms,
		&p.DailyActions,
		&p.IsActive,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetActive returns the active plan of businessID or nil.
func (r *GrowthPlanRepository) GetActive(ctx context.Context, businessID string) (*domain.GrowthPlan, error) {
	p, err := scanPlan(r.pool.QueryRow(ctx,
		`SELECT `+planColumns+` FROM growth_plans WHERE business_id = $1 AND is_active`, businessID))
	if noRows(err) {
		return nil, nil
	}
	return p, err
}

// CreateActive inserts p as the active plan. If a concurrent request
// already stored one, the stored plan is returned instead.
func (r *GrowthPlanRepository) CreateActive(ctx context.Context, p *domain.GrowthPlan) (*domain.GrowthPlan, error) {
	if p.WeeklyPlan == nil {
		p.WeeklyPlan = map[string]any{}
	}
	if p.TargetPlatforms == nil {
		p.TargetPlatforms = []string{}
	}
	if p.DailyActions == nil {
		p.DailyActions = []any{}
	}
	stored, err := scanPlan(r.pool.QueryRow(ctx, `
        INSERT INTO growth_plans
            (id, business_id, weekly_plan, messaging_tone, target_platforms, daily_actions, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, true, $7)
        ON CONFLICT (business_id) WHERE is_active DO NOTHING
        RETURNING `+planColumns,
		uuid.NewString(), p.BusinessID, p.WeeklyPlan, p.MessagingTone,
		p.TargetPlatforms, p.DailyActions, time.Now().UTC()))
	if noRows(err) {
		return r.GetActive(ctx, p.BusinessID)
	}
	return stored, err
}
