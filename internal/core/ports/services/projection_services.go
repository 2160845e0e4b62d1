package services

import (
	"context"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/SscSPs/networth_dashboard/internal/dto"
)

// ProjectionSvcFacade builds the net-worth charts of a user.
type ProjectionSvcFacade interface {
	// GetTimeline returns the aggregate history and forecast.
	GetTimeline(ctx context.Context, userID string, q dto.ProjectionQuery) (*domain.Timeline, error)

	// GetAccountTimeline returns the per-account history and forecast.
	GetAccountTimeline(ctx context.Context, userID string, q dto.AccountProjectionQuery) (*domain.AccountTimeline, error)
}
