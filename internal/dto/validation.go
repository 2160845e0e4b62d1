package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// requiredParams lists the accrual parameters an account type cannot do without.
var requiredParams = map[domain.AccountType][]string{
	domain.Investment: {"expectedGrowthRate"},
	domain.Loan:       {"interestRate", "monthlyPayment", "remainingTerm"},
	domain.CreditCard: {"interestRate", "monthlyPayment"},
}

// RequiredParams returns the parameter names that must be set for t.
func RequiredParams(t domain.AccountType) []string {
	return requiredParams[t]
}

func (p AccountParams) has(name string) bool {
	switch name {
	case "interestRate":
		return p.InterestRate != nil
	case "expectedGrowthRate":
		return p.ExpectedGrowthRate != nil
	case "monthlyContribution":
		return p.MonthlyContribution != nil
	case "monthlyPayment":
		return p.MonthlyPayment != nil
	case "remainingTerm":
		return p.RemainingTerm != nil
	}
	return false
}

func accountFieldsRule(sl validator.StructLevel) {
	a := sl.Current().Interface().(AccountFields)

	if category, ok := domain.CategoryOf(a.AccountType); ok && a.Category != "" && category != a.Category {
		sl.ReportError(a.Category, "category", "Category", "matches_type", string(a.AccountType))
	}
	if a.Balance != nil && a.Balance.IsNegative() {
		sl.ReportError(a.Balance, "balance", "Balance", "gte", "0")
	}
	for _, name := range requiredParams[a.AccountType] {
		if !a.AccountParams.has(name) {
			sl.ReportError(nil, name, name, "required_for_type", string(a.AccountType))
		}
	}
}

func balanceRule(sl validator.StructLevel, t domain.EventType, balance *decimal.Decimal) {
	if t.CarriesBalance() && balance == nil {
		sl.ReportError(nil, "balance", "Balance", "required_for_type", string(t))
	}
	if balance != nil && balance.IsNegative() {
		sl.ReportError(balance, "balance", "Balance", "gte", "0")
	}
}

func createEventRule(sl validator.StructLevel) {
	e := sl.Current().Interface().(CreateEventRequest)
	balanceRule(sl, e.Type, e.Balance)
}

func bundleEventRule(sl validator.StructLevel) {
	e := sl.Current().Interface().(BundleEvent)
	balanceRule(sl, e.Type, e.Balance)
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// RegisterAccountRules installs the account and event struct-level rules and
// JSON field naming on v. It is applied both to gin's binding engine and to
// NewValidator.
func RegisterAccountRules(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonName)
	v.RegisterStructValidation(accountFieldsRule, AccountFields{})
	v.RegisterStructValidation(createEventRule, CreateEventRequest{})
	v.RegisterStructValidation(bundleEventRule, BundleEvent{})
}

// NewValidator returns a validator reading the same `binding` tags gin uses.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterAccountRules(v)
	return v
}

// ValidationMessage renders validation errors as one readable line.
// Errors that are not validator errors are returned verbatim.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_for_type":
		return fmt.Sprintf("%s is required for %s", field, fe.Param())
	case "matches_type":
		return fmt.Sprintf("%s does not match account type %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
