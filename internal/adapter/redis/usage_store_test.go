package redis

import (
	"context"
	"net/netip"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth-agent/internal/core/domain"
)

func newStore(t *testing.T) (*UsageStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewUsageStore(client, ""), mr
}

func admit(t *testing.T, s *UsageStore, ip netip.Addr, at time.Time) bool {
	t.Helper()
	ok, err := s.AdmitFreeTier(context.Background(), domain.UsageRecord{
		ID:         uuid.NewString(),
		IPAddress:  ip,
		SessionKey: "sess",
		CreatedAt:  at,
	}, at.Add(-24*time.Hour), 2)
	require.NoError(t, err)
	return ok
}

func TestAdmitFreeTierLimit(t *testing.T) {
	s, mr := newStore(t)
	ip := netip.MustParseAddr("203.0.113.5")
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.True(t, admit(t, s, ip, now))
	assert.True(t, admit(t, s, ip, now.Add(time.Minute)))
	assert.False(t, admit(t, s, ip, now.Add(2*time.Minute)))

	other := netip.MustParseAddr("203.0.113.6")
	assert.True(t, admit(t, s, other, now))

	members, err := mr.ZMembers(defaultKeyPrefix + ip.String())
	require.NoError(t, err)
	assert.Len(t, members, 2)
	assert.True(t, mr.TTL(defaultKeyPrefix+ip.String()) > 0)
}

func TestAdmitFreeTierWindowSlides(t *testing.T) {
	s, _ := newStore(t)
	ip := netip.MustParseAddr("2001:db8::1")
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.True(t, admit(t, s, ip, now))
	assert.True(t, admit(t, s, ip, now.Add(12*time.Hour)))
	assert.False(t, admit(t, s, ip, now.Add(23*time.Hour)))

	// The first record falls out of the window.
	assert.True(t, admit(t, s, ip, now.Add(24*time.Hour+time.Second)))
	assert.False(t, admit(t, s, ip, now.Add(25*time.Hour)))
}

func TestAdmitFreeTierBoundaryIsInclusive(t *testing.T) {
	s, _ := newStore(t)
	ip := netip.MustParseAddr("198.51.100.9")
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.True(t, admit(t, s, ip, now))
	assert.True(t, admit(t, s, ip, now))
	// A record created exactly at the window start still counts.
	assert.False(t, admit(t, s, ip, now.Add(24*time.Hour)))
}

func TestAdmitFreeTierConcurrent(t *testing.T) {
	s, _ := newStore(t)
	ip := netip.MustParseAddr("192.0.2.44")
	now := time.Now().UTC()

	var (
		wg       sync.WaitGroup
		admitted atomic.Int32
	)
	count := 20
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			ok, err := s.AdmitFreeTier(context.Background(), domain.UsageRecord{
				ID:        uuid.NewString(),
				IPAddress: ip,
				CreatedAt: now,
			}, now.Add(-24*time.Hour), 2)
			if assert.NoError(t, err) && ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), admitted.Load())
}

func TestAdmitFreeTierStoreDown(t *testing.T) {
	s, mr := newStore(t)
	mr.Close()

	now := time.Now()
	_, err := s.AdmitFreeTier(context.Background(), domain.UsageRecord{
		ID:        uuid.NewString(),
		IPAddress: netip.MustParseAddr("192.0.2.1"),
		CreatedAt: now,
	}, now.Add(-time.Hour), 2)
	assert.Error(t, err)
}
