package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/shopspring/decimal"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the profile service. clock may be nil.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, clock func() time.Time) portssvc.UserSvcFacade {
	return &userService{BaseService: BaseService{Clock: clock}, userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find user")
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	if req.InflationRate != nil && req.InflationRate.IsNegative() {
		return nil, fmt.Errorf("%w: inflationRate must be at least 0", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find user for profile update")
		return nil, err
	}

	applyProfile(user, req.Birthday, req.InflationRate)
	user.LastUpdatedAt = s.Now()

	if err := s.userRepo.UpdateUserProfile(ctx, *user); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	s.LogInfo(ctx, "Profile updated")
	return user, nil
}

// applyProfile sets the fields that were present in a profile update.
func applyProfile(user *domain.User, birthday dto.NullableDate, inflationRate *decimal.Decimal) {
	if birthday.Set {
		user.Birthday = birthday.Value
	}
	if inflationRate != nil {
		user.InflationRate = *inflationRate
	}
}
