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

// BusinessRepository implements port.BusinessRepository.
type BusinessRepository struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

var _ port.BusinessRepository = (*BusinessRepository)(nil)

const selectProfile = `
        SELECT id, user_id, business_name, business_type, description,
               target_audience, location, contact_info, created_at, updated_at
        FROM business_profiles`

func scanProfile(row pgx.Row) (*domain.BusinessProfile, error) {
	var p domain.BusinessProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.BusinessName,
		&p.BusinessType,
		&p.Description,
		&p.TargetAudience,
		&p.Location,
		&p.ContactInfo,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.ContactInfo == nil {
		p.ContactInfo = map[string]string{}
	}
	return &p, nil
}

// GetByUser returns the profile of userID or nil when there is none.
func (r *BusinessRepository) GetByUser(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, selectProfile+` WHERE user_id = $1`, userID))
	if noRows(err) {
		return nil, nil
	}
	return p, err
}

// GetOrCreate inserts an empty profile unless one exists and returns the
// stored row. Concurrent first requests resolve to the same profile.
func (r *BusinessRepository) GetOrCreate(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO business_profiles (id, user_id) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`,
		uuid.NewString(), userID)
	if err != nil {
		return nil, err
	}
	return scanProfile(r.pool.QueryRow(ctx, selectProfile+` WHERE user_id = $1`, userID))
}

// Update stores the descriptive fields and contact info of p.
func (r *BusinessRepository) Update(ctx context.Context, p *domain.BusinessProfile) error {
	if p.ContactInfo == nil {
		p.ContactInfo = map[string]string{}
	}
	p.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `
        UPDATE business_profiles
        SET business_name = $2, business_type = $3, description = $4,
            target_audience = $5, location = $6, contact_info = $7, updated_at = $8
        WHERE id = $1`,
		p.ID, p.BusinessName, p.BusinessType, p.Description,
		p.TargetAudience, p.Location, p.ContactInfo, p.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
