package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// User is a row of the users table.
type User struct {
	UserID        string          `db:"user_id"`
	Username      string          `db:"username"`
	PasswordHash  string          `db:"password_hash"`
	Birthday      sql.NullTime    `db:"birthday"`
	InflationRate decimal.Decimal `db:"inflation_rate"`
	AuditFields
}
