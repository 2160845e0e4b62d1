package dto

import (
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateProfileRequest changes the projection preferences of a user.
// Birthday may be set to null explicitly to clear it.
type UpdateProfileRequest struct {
	Birthday      NullableDate     `json:"birthday"`
	InflationRate *decimal.Decimal `json:"inflationRate,omitempty"`
}

// ProfileResponse defines the data returned for the current user.
type ProfileResponse struct {
	Username      string          `json:"username"`
	Birthday      *time.Time      `json:"birthday"`
	InflationRate decimal.Decimal `json:"inflationRate"`
}

// ToProfileResponse converts a domain.User to ProfileResponse DTO
func ToProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{
		Username:      u.Username,
		Birthday:      u.Birthday,
		InflationRate: u.InflationRate,
	}
}
