package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int { return &i }

func TestAccountRules(t *testing.T) {
	v := NewValidator()

	testCases := []struct {
		name    string
		fields  AccountFields
		wantErr string
	}{
		{
			name:   "investment with growth rate",
			fields: AccountFields{Name: "Brokerage", Category: domain.Asset, AccountType: domain.Investment, Balance: decPtr("1000"), AccountParams: AccountParams{ExpectedGrowthRate: decPtr("7")}},
		},
		{
			name:    "investment without growth rate",
			fields:  AccountFields{Name: "Brokerage", Category: domain.Asset, AccountType: domain.Investment, Balance: decPtr("1000")},
			wantErr: "expectedGrowthRate is required for investment",
		},
		{
			name:    "loan missing term",
			fields:  AccountFields{Name: "Mortgage", Category: domain.Debt, AccountType: domain.Loan, Balance: decPtr("200000"), AccountParams: AccountParams{InterestRate: decPtr("6"), MonthlyPayment: decPtr("1800")}},
			wantErr: "remainingTerm is required for loan",
		},
		{
			name:    "category mismatch",
			fields:  AccountFields{Name: "Card", Category: domain.Asset, AccountType: domain.CreditCard, Balance: decPtr("10"), AccountParams: AccountParams{InterestRate: decPtr("20"), MonthlyPayment: decPtr("5")}},
			wantErr: "category does not match account type credit_card",
		},
		{
			name:    "negative balance",
			fields:  AccountFields{Name: "Cash", Category: domain.Asset, AccountType: domain.Cash, Balance: decPtr("-1")},
			wantErr: "balance must be at least 0",
		},
		{
			name:    "unknown type",
			fields:  AccountFields{Name: "Boat", Category: domain.Asset, AccountType: "boat", Balance: decPtr("1")},
			wantErr: "type must be one of",
		},
		{
			name:    "missing balance",
			fields:  AccountFields{Name: "Cash", Category: domain.Asset, AccountType: domain.Cash},
			wantErr: "balance is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.fields)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, ValidationMessage(err), tc.wantErr)
		})
	}
}

func TestEventRules(t *testing.T) {
	v := NewValidator()
	date := &Date{Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	err := v.Struct(CreateEventRequest{AccountID: "a1", Type: domain.BalanceUpdate, Date: date})
	require.Error(t, err)
	assert.Contains(t, ValidationMessage(err), "balance is required for balance_update")

	assert.NoError(t, v.Struct(CreateEventRequest{AccountID: "a1", Type: domain.AccountClosed, Date: date}))
	assert.NoError(t, v.Struct(BundleEvent{Type: domain.AccountOpened, Date: date, Balance: decPtr("5")}))

	err = v.Struct(BundleAccount{
		AccountFields: AccountFields{Name: "Cash", Category: domain.Asset, AccountType: domain.Cash, Balance: decPtr("5")},
		Events:        []BundleEvent{{Type: domain.BalanceUpdate, Date: date}},
	})
	require.Error(t, err)
	assert.Contains(t, ValidationMessage(err), "balance is required")
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T10:30:00Z"`), &d))
	assert.Equal(t, 10, d.Hour())

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestUpdateProfileRequest_Birthday(t *testing.T) {
	var omitted UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"inflationRate": 2.5}`), &omitted))
	assert.False(t, omitted.Birthday.Set)
	assert.True(t, omitted.InflationRate.Equal(decimal.RequireFromString("2.5")))

	var cleared UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"birthday": null}`), &cleared))
	assert.True(t, cleared.Birthday.Set)
	assert.Nil(t, cleared.Birthday.Value)

	var set UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"birthday": "1990-06-01"}`), &set))
	require.NotNil(t, set.Birthday.Value)
	assert.Equal(t, 1990, set.Birthday.Value.Year())

	out, err := json.Marshal(BundleProfile{Birthday: set.Birthday})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"birthday":"1990-06-01"`)
}
