package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
)

// UsageStore implements port.UsageStore on the content_generation_requests
// table.
type UsageStore struct {
	pool *pgxpool.Pool
}

func NewUsageStore(pool *pgxpool.Pool) *UsageStore {
	return &UsageStore{pool: pool}
}

var _ port.UsageStore = (*UsageStore)(nil)

// AdmitFreeTier counts and inserts under a transaction-scoped advisory lock
// keyed by the IP address. The transaction runs at READ COMMITTED so the
// count after the lock sees every record committed by the previous holder.
func (s *UsageStore) AdmitFreeTier(ctx context.Context, rec domain.UsageRecord, since time.Time, limit int) (bool, error) {
	admitted := false
	err := inTx(ctx, s.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, rec.IPAddress.String()); err != nil {
			return err
		}
		var count int
		err := tx.QueryRow(ctx,
			`SELECT count(*) FROM content_generation_requests WHERE ip_address = $1 AND created_at >= $2`,
			rec.IPAddress, since).Scan(&count)
		if err != nil {
			return err
		}
		if count >= limit {
			return nil
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO content_generation_requests (id, ip_address, session_key, created_at) VALUES ($1, $2, $3, $4)`,
			rec.ID, rec.IPAddress, rec.SessionKey, rec.CreatedAt)
		if err != nil {
			return err
		}
		admitted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return admitted, nil
}
