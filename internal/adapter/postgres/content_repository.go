package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
)

// ContentRepository implements port.ContentRepository.
type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

var _ port.ContentRepository = (*ContentRepository)(nil)

// Create inserts c and sets its ID and CreatedAt. Metadata is stored as
// JSON; structured artifacts are encoded through their json tags.
func (r *ContentRepository) Create(ctx context.Context, c *domain.MarketingContent) error {
	meta, err := json.Marshal(c.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	_, err = r.pool.Exec(ctx, `
        INSERT INTO marketing_contents
            (id, business_id, content_type, platform, content_text, metadata,
             is_approved, is_posted, scheduled_time, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.BusinessID, string(c.ContentType), c.Platform, c.Text, meta,
		c.IsApproved, c.IsPosted, c.ScheduledTime, c.CreatedAt)
	return err
}

// ListByBusiness returns the content of a business, newest first.
func (r *ContentRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.MarketingContent, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, business_id, content_type, platform, content_text, metadata,
               is_approved, is_posted, scheduled_time, created_at
        FROM marketing_contents
        WHERE business_id = $1
        ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MarketingContent, error) {
		var (
			c    domain.MarketingContent
			kind string
		)
		err := row.Scan(
			&c.ID,
			&c.BusinessID,
			&kind,
			&c.Platform,
			&c.Text,
			&c.Metadata,
			&c.IsApproved,
			&c.IsPosted,
			&c.ScheduledTime,
			&c.CreatedAt,
		)
		c.ContentType = domain.ContentType(kind)
		return c, err
	})
}

// Approve sets is_approved on content owned by businessID.
func (r *ContentRepository) Approve(ctx context.Context, businessID, contentID string) error {
	if _, err := uuid.Parse(contentID); err != nil {
		return port.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE marketing_contents SET is_approved = true WHERE id = $1 AND business_id = $2`,
		contentID, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
