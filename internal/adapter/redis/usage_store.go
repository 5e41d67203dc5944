// Package redis implements the free-tier usage store on Redis sorted sets.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
)

const defaultKeyPrefix = "growth-agent:free-tier:"

// admitScript trims records older than the window, counts the rest and adds
// the new record when the count is below the limit. Scores are unix
// milliseconds.
//
// KEYS[1] usage set, ARGV: since, now, limit, ttl ms, member.
var admitScript = redis.NewScript(`
	local since = tonumber(ARGV[1])
	redis.call("zremrangebyscore", KEYS[1], "-inf", "(" .. since)
	local count = redis.call("zcount", KEYS[1], since, "+inf")
	if count >= tonumber(ARGV[3]) then
		return 0
	end
	redis.call("zadd", KEYS[1], ARGV[2], ARGV[5])
	redis.call("pexpire", KEYS[1], ARGV[4])
	return 1
`)

// UsageStore implements port.UsageStore with one sorted set per IP address.
type UsageStore struct {
	client redis.Scripter
	prefix string
}

// NewUsageStore returns a store using client. An empty prefix selects the
// default key namespace.
func NewUsageStore(client redis.Scripter, prefix string) *UsageStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &UsageStore{client: client, prefix: prefix}
}

var _ port.UsageStore = (*UsageStore)(nil)

// AdmitFreeTier runs the admission script, which Redis executes atomically.
func (s *UsageStore) AdmitFreeTier(ctx context.Context, rec domain.UsageRecord, since time.Time, limit int) (bool, error) {
	ttl := rec.CreatedAt.Sub(since)
	if ttl < time.Millisecond {
		ttl = time.Millisecond
	}
	member := rec.ID
	if rec.SessionKey != "" {
		member += "|" + rec.SessionKey
	}
	res, err := admitScript.Run(ctx, s.client, []string{s.key(rec)},
		since.UnixMilli(), rec.CreatedAt.UnixMilli(), limit, ttl.Milliseconds(), member).Int()
	if err != nil {
		return false, fmt.Errorf("free tier admission: %w", err)
	}
	return res == 1, nil
}

func (s *UsageStore) key(rec domain.UsageRecord) string {
	return s.prefix + rec.IPAddress.Unmap().String()
}
