package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port/mocks"
)

func TestProfileUpdate(t *testing.T) {
	repo := mocks.NewMockBusinessRepository(t)
	stored := &domain.BusinessProfile{ID: "b1", UserID: "u1"}

	repo.EXPECT().GetOrCreate(mock.Anything, "u1").Return(stored, nil)
	repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(p *domain.BusinessProfile) bool {
			return p.ID == "b1" && p.UserID == "u1" && p.BusinessName == "Ama Crafts" && p.ContactInfo["phone"] == "+233"
		})).
		Return(nil)

	svc := NewProfileUseCase(repo)
	got, err := svc.Update(context.Background(), "u1", domain.BusinessProfile{
		ID:          "spoofed",
		UserID:      "someone-else",
		ContactInfo: map[string]string{"phone": "+233"},
		BusinessContext: domain.BusinessContext{
			BusinessName: "  Ama Crafts ",
			Location:     "Accra",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, "Accra", got.Location)
}

func TestProfileGetCreates(t *testing.T) {
	repo := mocks.NewMockBusinessRepository(t)
	repo.EXPECT().GetOrCreate(mock.Anything, "u1").Return(&domain.BusinessProfile{ID: "b1", ContactInfo: map[string]string{}}, nil)

	got, err := NewProfileUseCase(repo).Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
}
