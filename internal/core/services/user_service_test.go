package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/SscSPs/networth_dashboard/internal/core/services"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profileUser() *domain.User {
	birthday := time.Date(1990, time.April, 2, 0, 0, 0, 0, time.UTC)
	return &domain.User{
		UserID:        "user-1",
		Username:      "alice",
		Birthday:      &birthday,
		InflationRate: dec("3.5"),
	}
}

func TestUserService_GetProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo, fixedClock)
	ctx := context.Background()

	repo.On("FindUserByID", ctx, "user-1").Return(profileUser(), nil).Once()
	repo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetProfile(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	newBirthday := time.Date(1985, time.December, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		req           dto.UpdateProfileRequest
		wantBirthday  *time.Time
		wantInflation string
	}{
		{
			name:          "omitted fields are kept",
			req:           dto.UpdateProfileRequest{},
			wantBirthday:  profileUser().Birthday,
			wantInflation: "3.5",
		},
		{
			name:          "explicit null clears birthday",
			req:           dto.UpdateProfileRequest{Birthday: dto.NullableDate{Set: true}},
			wantBirthday:  nil,
			wantInflation: "3.5",
		},
		{
			name: "both fields replaced",
			req: dto.UpdateProfileRequest{
				Birthday:      dto.NullableDate{Set: true, Value: &newBirthday},
				InflationRate: decPtr("2"),
			},
			wantBirthday:  &newBirthday,
			wantInflation: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := services.NewUserService(repo, fixedClock)
			ctx := context.Background()

			repo.On("FindUserByID", ctx, "user-1").Return(profileUser(), nil).Once()
			repo.On("UpdateUserProfile", ctx, mock.MatchedBy(func(u domain.User) bool {
				return u.LastUpdatedAt.Equal(fixedNow)
			})).Return(nil).Once()

			user, err := svc.UpdateProfile(ctx, "user-1", tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantBirthday, user.Birthday)
			assert.True(t, dec(tt.wantInflation).Equal(user.InflationRate))
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateProfile_RejectsNegativeInflation(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo, fixedClock)

	_, err := svc.UpdateProfile(context.Background(), "user-1", dto.UpdateProfileRequest{InflationRate: decPtr("-0.5")})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "FindUserByID", mock.Anything, mock.Anything)
}
