package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
	"growth-agent/internal/core/port/mocks"
)

type contentFixture struct {
	store      *mocks.MockUsageStore
	generator  *mocks.MockGenerator
	businesses *mocks.MockBusinessRepository
	contents   *mocks.MockContentRepository
	svc        *ContentUseCase
}

func newContentFixture(t *testing.T) *contentFixture {
	f := &contentFixture{
		store:      mocks.NewMockUsageStore(t),
		generator:  mocks.NewMockGenerator(t),
		businesses: mocks.NewMockBusinessRepository(t),
		contents:   mocks.NewMockContentRepository(t),
	}
	gate := NewRateGate(f.store, 2, 24*time.Hour, nil)
	f.svc = NewContentUseCase(gate, f.generator, f.businesses, f.contents, nil, nil)
	return f
}

var anonymous = domain.Caller{IP: netip.MustParseAddr("192.0.2.10"), SessionKey: "sess"}

func TestGenerateAnonymousUsesDefaults(t *testing.T) {
	f := newContentFixture(t)

	f.store.EXPECT().AdmitFreeTier(mock.Anything, mock.Anything, mock.Anything, 2).Return(true, nil)
	f.generator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "- Business Name: Small Business") &&
				strings.Contains(p, "TASK: Create a SOCIAL_POST for INSTAGRAM")
		})).
		Return("Fresh jollof today! #food #lagos", nil)

	res, err := f.svc.Generate(context.Background(), anonymous, domain.GenerationRequest{
		ContentType: domain.ContentSocialPost,
		Platform:    "instagram",
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Fresh jollof today! #food #lagos", res.Content)
	assert.Equal(t, domain.ContentSocialPost, res.ContentType)
	assert.Empty(t, res.ContentID)

	post, ok := res.Structured.(domain.SocialPost)
	require.True(t, ok)
	assert.Equal(t, []string{"#food", "#lagos"}, post.Hashtags)
}

func TestGenerateDenied(t *testing.T) {
	f := newContentFixture(t)

	f.store.EXPECT().AdmitFreeTier(mock.Anything, mock.Anything, mock.Anything, 2).Return(false, nil)

	res, err := f.svc.Generate(context.Background(), anonymous, domain.GenerationRequest{ContentType: domain.ContentEmail})
	assert.ErrorIs(t, err, port.ErrRateLimitExceeded)
	assert.Nil(t, res)
}

func TestGenerateInvalidRequestConsumesNothing(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.svc.Generate(context.Background(), anonymous, domain.GenerationRequest{ContentType: "poem"})
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
}

func TestGenerateBackendFailureStillConsumesAttempt(t *testing.T) {
	f := newContentFixture(t)

	f.store.EXPECT().AdmitFreeTier(mock.Anything, mock.Anything, mock.Anything, 2).Return(true, nil).Once()
	f.generator.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: quota", port.ErrGeneration))

	res, err := f.svc.Generate(context.Background(), anonymous, domain.GenerationRequest{ContentType: domain.ContentAdCopy})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "quota")
	assert.Empty(t, res.Content)
}

func TestGenerateAuthenticatedPersists(t *testing.T) {
	f := newContentFixture(t)
	profile := &domain.BusinessProfile{
		ID:     "b1",
		UserID: "u1",
		BusinessContext: domain.BusinessContext{
			BusinessName: "Ada's Fabrics",
			BusinessType: "retail",
		},
	}

	f.businesses.EXPECT().GetByUser(mock.Anything, "u1").Return(profile, nil)
	f.generator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "- Business Name: Ada's Fabrics")
		})).
		Return("Ankara sale this week. Visit us today.", nil)
	f.contents.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *domain.MarketingContent) bool {
			return c.BusinessID == "b1" &&
				c.ContentType == domain.ContentWhatsApp &&
				c.Metadata["tone"] == "warm" &&
				c.Metadata["theme"] == "sale" &&
				c.Metadata["generated_at"] != "" &&
				c.Metadata["structured"] != nil
		})).
		Run(func(_ context.Context, c *domain.MarketingContent) { c.ID = "c9" }).
		Return(nil)

	res, err := f.svc.Generate(context.Background(), domain.Caller{UserID: "u1"}, domain.GenerationRequest{
		ContentType:  domain.ContentWhatsApp,
		Tone:         "warm",
		Theme:        "sale",
		CampaignType: "promotion",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "c9", res.ContentID)
	f.store.AssertNotCalled(t, "AdmitFreeTier", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateAuthenticatedWithoutProfile(t *testing.T) {
	f := newContentFixture(t)

	f.businesses.EXPECT().GetByUser(mock.Anything, "u2").Return(nil, nil)
	f.generator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "Small Business")
		})).
		Return("Video script here.", nil)

	res, err := f.svc.Generate(context.Background(), domain.Caller{UserID: "u2"}, domain.GenerationRequest{ContentType: domain.ContentVideoScript})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.ContentID)
}

func TestListWithoutProfileIsEmpty(t *testing.T) {
	f := newContentFixture(t)

	f.businesses.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, nil)

	items, err := f.svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestList(t *testing.T) {
	f := newContentFixture(t)
	want := []domain.MarketingContent{{ID: "c2"}, {ID: "c1"}}

	f.businesses.EXPECT().GetByUser(mock.Anything, "u1").Return(&domain.BusinessProfile{ID: "b1"}, nil)
	f.contents.EXPECT().ListByBusiness(mock.Anything, "b1").Return(want, nil)

	items, err := f.svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, want, items)
}

func TestCreate(t *testing.T) {
	f := newContentFixture(t)

	f.businesses.EXPECT().GetOrCreate(mock.Anything, "u1").Return(&domain.BusinessProfile{ID: "b1"}, nil)
	f.contents.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *domain.MarketingContent) bool {
			return c.BusinessID == "b1" && c.ID == "" && c.Platform == domain.DefaultPlatform
		})).
		Run(func(_ context.Context, c *domain.MarketingContent) { c.ID = "c1" }).
		Return(nil)

	got, err := f.svc.Create(context.Background(), "u1", domain.MarketingContent{
		ID:          "spoofed",
		BusinessID:  "other",
		ContentType: "Email",
		Text:        "Hello subscribers",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, domain.ContentEmail, got.ContentType)
}

func TestCreateValidation(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.svc.Create(context.Background(), "u1", domain.MarketingContent{ContentType: "tweet", Text: "x"})
	assert.ErrorIs(t, err, port.ErrInvalidRequest)

	_, err = f.svc.Create(context.Background(), "u1", domain.MarketingContent{ContentType: domain.ContentEmail, Text: "  "})
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
}

func TestApprove(t *testing.T) {
	f := newContentFixture(t)

	f.businesses.EXPECT().GetByUser(mock.Anything, "u1").Return(&domain.BusinessProfile{ID: "b1"}, nil)
	f.contents.EXPECT().Approve(mock.Anything, "b1", "c1").Return(nil).Once()
	f.contents.EXPECT().Approve(mock.Anything, "b1", "foreign").Return(port.ErrNotFound).Once()

	require.NoError(t, f.svc.Approve(context.Background(), "u1", "c1"))
	assert.ErrorIs(t, f.svc.Approve(context.Background(), "u1", "foreign"), port.ErrNotFound)
}

func TestApproveWithoutProfile(t *testing.T) {
	f := newContentFixture(t)

	f.businesses.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, nil)

	assert.ErrorIs(t, f.svc.Approve(context.Background(), "u1", "c1"), port.ErrNotFound)
}

func TestGenerateRepositoryFailure(t *testing.T) {
	f := newContentFixture(t)
	boom := errors.New("conn reset")

	f.businesses.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, boom)

	_, err := f.svc.Generate(context.Background(), domain.Caller{UserID: "u1"}, domain.GenerationRequest{ContentType: domain.ContentEmail})
	assert.ErrorIs(t, err, boom)
}
