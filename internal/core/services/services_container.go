package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/platform/config"
	"github.com/SscSPs/networth_dashboard/internal/platform/metrics"
	"github.com/SscSPs/networth_dashboard/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// collector may be nil, in which case engine runs and imports are not measured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, collector *metrics.Collector) (*portssvc.ServiceContainer, error) {
	var (
		projectionRecorder ProjectionRecorder
		importRecorder     ImportRecorder
	)
	if collector != nil {
		projectionRecorder = collector
		importRecorder = collector
	}

	tokens := utils.TokenIssuer{
		Secret: cfg.JWTSecret,
		Expiry: cfg.JWTExpiryDuration,
		Issuer: cfg.JWTIssuer,
	}

	transfer, err := NewTransferService(
		repos.UserRepo,
		repos.AccountRepo,
		repos.EventRepo,
		WithImportRecorder(importRecorder),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transfer service: %w", err)
	}

	return &portssvc.ServiceContainer{
		Auth:    NewAuthService(repos.UserRepo, tokens, cfg.DefaultInflationRate),
		User:    NewUserService(repos.UserRepo, nil),
		Account: NewAccountService(repos.AccountRepo),
		Event:   NewEventService(repos.EventRepo, repos.AccountRepo),
		Projection: NewProjectionService(
			repos.AccountRepo,
			repos.EventRepo,
			repos.UserRepo,
			cfg.MaxProjectionMonths,
			WithProjectionRecorder(projectionRecorder),
		),
		Transfer: transfer,
	}, nil
}
