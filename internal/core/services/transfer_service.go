package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/SscSPs/networth_dashboard/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xeipuuv/gojsonschema"
)

// ImportRecorder observes the outcome of bundle imports.
type ImportRecorder interface {
	RecordImport(record string, accepted, rejected int)
}

type nopImportRecorder struct{}

func (nopImportRecorder) RecordImport(string, int, int) {}

type transferService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	eventRepo   portsrepo.EventReader
	schema      *gojsonschema.Schema
	validate    *validator.Validate
	recorder    ImportRecorder
}

// TransferServiceOption is a functional option for configuring the transfer service
type TransferServiceOption func(*transferService)

// WithTransferClock overrides the clock used for export and import timestamps.
func WithTransferClock(clock func() time.Time) TransferServiceOption {
	return func(s *transferService) {
		s.Clock = clock
	}
}

// WithImportRecorder reports import outcomes to recorder.
func WithImportRecorder(recorder ImportRecorder) TransferServiceOption {
	return func(s *transferService) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// NewTransferService creates the export/import service.
func NewTransferService(
	userRepo portsrepo.UserRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	eventRepo portsrepo.EventReader,
	options ...TransferServiceOption,
) (portssvc.TransferSvcFacade, error) {
	schema, err := utils.NewBundleSchema()
	if err != nil {
		return nil, err
	}
	svc := &transferService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		eventRepo:   eventRepo,
		schema:      schema,
		validate:    dto.NewValidator(),
		recorder:    nopImportRecorder{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc, nil
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func (s *transferService) Export(ctx context.Context, userID string) (*dto.Bundle, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to load user for export")
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for export")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	events, err := s.eventRepo.ListEventsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load events for export")
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	byAccount := make(map[string][]domain.AccountEvent, len(accounts))
	for _, e := range events {
		byAccount[e.AccountID] = append(byAccount[e.AccountID], e)
	}

	inflation := user.InflationRate
	bundle := &dto.Bundle{
		Version:    dto.BundleVersion,
		ExportedAt: s.Now().UTC(),
		Profile: &dto.BundleProfile{
			Username:      user.Username,
			Birthday:      dto.NullableDate{Set: true, Value: user.Birthday},
			InflationRate: &inflation,
		},
		Accounts: make([]dto.BundleAccount, 0, len(accounts)),
	}
	for i := range accounts {
		bundle.Accounts = append(bundle.Accounts, dto.ToBundleAccount(&accounts[i], byAccount[accounts[i].AccountID]))
	}

	s.LogInfo(ctx, "Data exported", slog.Int("accounts", len(accounts)), slog.Int("events", len(events)))
	return bundle, nil
}

func (s *transferService) Import(ctx context.Context, userID string, raw []byte) (*dto.ImportResult, error) {
	details, err := utils.SchemaErrors(s.schema, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: body is not valid JSON", apperrors.ErrValidation)
	}
	if len(details) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.JoinDetails(details))
	}

	var bundle dto.Bundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if bundle.Version != dto.BundleVersion {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrUnsupportedVersion, bundle.Version)
	}
	if bundle.Profile != nil && bundle.Profile.InflationRate != nil && bundle.Profile.InflationRate.IsNegative() {
		return nil, fmt.Errorf("%w: inflationRate must be at least 0", apperrors.ErrValidation)
	}

	now := s.Now()
	result := &dto.ImportResult{Failures: []dto.ImportFailure{}}
	accounts := make([]domain.Account, 0, len(bundle.Accounts))
	var events []domain.AccountEvent

	for i, ba := range bundle.Accounts {
		if err := s.validate.Struct(ba); err != nil {
			name := ba.Name
			if name == "" {
				name = "(unnamed)"
			}
			result.Failures = append(result.Failures, dto.ImportFailure{Name: name, Reason: dto.ValidationMessage(err)})
			continue
		}

		account := domain.Account{
			AccountID:   uuid.NewString(),
			UserID:      userID,
			Name:        ba.Name,
			Category:    ba.Category,
			AccountType: ba.AccountType,
			Balance:     *ba.Balance,
			Terms:       termsFor(ba.AccountFields),
			AuditFields: domain.AuditFields{
				// Keep the bundle's account order stable under ListAccounts.
				CreatedAt:     now.Add(time.Duration(i) * time.Microsecond),
				LastUpdatedAt: now,
			},
		}
		accounts = append(accounts, account)

		for _, be := range ba.Events {
			e := newEvent(account, be.Type, be.Date.Time)
			if be.Balance != nil && be.Type.CarriesBalance() {
				e.Balance = decimal.NewNullDecimal(*be.Balance)
			}
			events = append(events, e)
		}
	}

	if err := s.accountRepo.ReplaceAccounts(ctx, userID, accounts, events); err != nil {
		s.LogError(ctx, err, "Failed to replace accounts during import")
		return nil, fmt.Errorf("failed to import accounts: %w", err)
	}

	if bundle.Profile != nil {
		if err := s.importProfile(ctx, userID, bundle.Profile, now); err != nil {
			return nil, err
		}
	}

	result.Imported = dto.ImportCounts{Accounts: len(accounts), Events: len(events)}
	s.recorder.RecordImport("account", len(accounts), len(result.Failures))
	s.recorder.RecordImport("event", len(events), 0)
	s.LogInfo(ctx, "Data imported",
		slog.Int("accounts", len(accounts)),
		slog.Int("events", len(events)),
		slog.Int("failures", len(result.Failures)))
	return result, nil
}

func (s *transferService) importProfile(ctx context.Context, userID string, profile *dto.BundleProfile, now time.Time) error {
	if !profile.Birthday.Set && profile.InflationRate == nil {
		return nil
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to load user for profile import")
		return err
	}
	applyProfile(user, profile.Birthday, profile.InflationRate)
	user.LastUpdatedAt = now
	if err := s.userRepo.UpdateUserProfile(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to import profile")
		return fmt.Errorf("failed to import profile: %w", err)
	}
	return nil
}
