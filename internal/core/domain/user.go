package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultInflationRate is the annual inflation (%) assumed for new users.
var DefaultInflationRate = decimal.RequireFromString("3.5")

// User represents a user of the application in the domain.
type User struct {
	UserID        string          `json:"userID"`
	Username      string          `json:"username"`
	PasswordHash  string          `json:"-"`
	Birthday      *time.Time      `json:"birthday,omitempty"`
	InflationRate decimal.Decimal `json:"inflationRate"`
	AuditFields
}
