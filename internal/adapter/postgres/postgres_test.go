package postgres

import (
	"context"
	"net/netip"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
	"growth-agent/internal/db"
)

// testPool connects to PSQL_TEST_ADDRESS and applies migrations. Tests are
// skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestUsageStoreConcurrentAdmissions(t *testing.T) {
	pool := testPool(t)
	store := NewUsageStore(pool)
	ctx := context.Background()

	ip := netip.AddrFrom4([4]byte{10, 99, byte(time.Now().UnixNano() % 250), 1})
	_, err := pool.Exec(ctx, `DELETE FROM content_generation_requests WHERE ip_address = $1`, ip)
	require.NoError(t, err)

	now := time.Now().UTC()
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	count := 8
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			ok, err := store.AdmitFreeTier(ctx, domain.UsageRecord{
				ID:        uuid.NewString(),
				IPAddress: ip,
				CreatedAt: now,
			}, now.Add(-24*time.Hour), 2)
			if assert.NoError(t, err) && ok {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 2, admitted)

	// Records older than the window do not count.
	later := now.Add(25 * time.Hour)
	ok, err := store.AdmitFreeTier(ctx, domain.UsageRecord{ID: uuid.NewString(), IPAddress: ip, CreatedAt: later},
		later.Add(-24*time.Hour), 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBusinessContentAndPlanRepositories(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	businesses := NewBusinessRepository(pool)
	contents := NewContentRepository(pool)
	plans := NewGrowthPlanRepository(pool)

	userID := "user-" + uuid.NewString()

	none, err := businesses.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, none)

	profile, err := businesses.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	again, err := businesses.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)

	profile.BusinessName = "Ngozi Salon"
	profile.ContactInfo = map[string]string{"phone": "+234"}
	require.NoError(t, businesses.Update(ctx, profile))
	got, err := businesses.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ngozi Salon", got.BusinessName)
	assert.Equal(t, "+234", got.ContactInfo["phone"])

	c := &domain.MarketingContent{
		BusinessID:  profile.ID,
		ContentType: domain.ContentSocialPost,
		Platform:    "instagram",
		Text:        "New braids styles this week #salon",
		Metadata:    map[string]any{"tone": "friendly"},
	}
	require.NoError(t, contents.Create(ctx, c))
	items, err := contents.ListByBusiness(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "friendly", items[0].Metadata["tone"])

	assert.ErrorIs(t, contents.Approve(ctx, uuid.NewString(), c.ID), port.ErrNotFound)
	assert.ErrorIs(t, contents.Approve(ctx, profile.ID, "not-a-uuid"), port.ErrNotFound)
	require.NoError(t, contents.Approve(ctx, profile.ID, c.ID))

	first, err := plans.CreateActive(ctx, &domain.GrowthPlan{
		BusinessID:      profile.ID,
		WeeklyPlan:      map[string]any{"weekly_themes": []any{"A"}},
		MessagingTone:   "friendly_professional",
		TargetPlatforms: []string{"facebook"},
	})
	require.NoError(t, err)
	second, err := plans.CreateActive(ctx, &domain.GrowthPlan{BusinessID: profile.ID, MessagingTone: "other"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "friendly_professional", second.MessagingTone)
}
