package services

import (
	"context"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/SscSPs/networth_dashboard/internal/dto"
)

// AuthSvcFacade handles username/password authentication.
type AuthSvcFacade interface {
	// Register creates a user and returns it with a signed access token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)

	// Login verifies credentials and returns the user with a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
}
