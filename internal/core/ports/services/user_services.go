package services

import (
	"context"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/SscSPs/networth_dashboard/internal/dto"
)

// UserSvcFacade manages the profile of the authenticated user.
type UserSvcFacade interface {
	// GetProfile retrieves the user's profile.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile applies the fields present in req.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}
