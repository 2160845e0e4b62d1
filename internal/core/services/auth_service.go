package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/SscSPs/networth_dashboard/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type authService struct {
	BaseService
	userRepo         portsrepo.UserRepositoryFacade
	tokens           utils.TokenIssuer
	defaultInflation decimal.Decimal
}

// NewAuthService creates the username/password authentication service.
// New users start with defaultInflation as their inflation assumption.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens utils.TokenIssuer, defaultInflation decimal.Decimal) portssvc.AuthSvcFacade {
	return &authService{
		BaseService:      BaseService{Clock: tokens.Now},
		userRepo:         userRepo,
		tokens:           tokens,
		defaultInflation: defaultInflation,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, "", err
	}

	now := s.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      req.Username,
		PasswordHash:  hash,
		InflationRate: s.defaultInflation,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		}
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, _, err := s.tokens.Issue(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.String("user_id", user.UserID))
		return nil, "", err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, token, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user", slog.String("username", req.Username))
		return nil, "", err
	}

	ok, err := utils.CheckPasswordHash(req.Password, user.PasswordHash)
	if err != nil {
		s.LogError(ctx, err, "Stored password hash is unreadable", slog.String("user_id", user.UserID))
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, _, err := s.tokens.Issue(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.String("user_id", user.UserID))
		return nil, "", err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}
