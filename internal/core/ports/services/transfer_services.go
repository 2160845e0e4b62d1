package services

import (
	"context"

	"github.com/SscSPs/networth_dashboard/internal/dto"
)

// TransferSvcFacade exports and restores a user's complete data set.
type TransferSvcFacade interface {
	// Export builds a bundle of the user's profile, accounts and events.
	Export(ctx context.Context, userID string) (*dto.Bundle, error)

	// Import validates raw as a bundle and replaces the user's data with it.
	Import(ctx context.Context, userID string, raw []byte) (*dto.ImportResult, error)
}
