package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/core/projection"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/shopspring/decimal"
)

// ProjectionRecorder observes projection engine runs.
type ProjectionRecorder interface {
	RecordProjection(kind string, points int, duration time.Duration)
}

type nopProjectionRecorder struct{}

func (nopProjectionRecorder) RecordProjection(string, int, time.Duration) {}

type projectionService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	eventRepo   portsrepo.EventReader
	userRepo    portsrepo.UserReader
	maxMonths   int
	recorder    ProjectionRecorder
}

// ProjectionServiceOption is a functional option for configuring the projection service
type ProjectionServiceOption func(*projectionService)

// WithProjectionClock fixes the instant treated as "now" by the engine.
func WithProjectionClock(clock func() time.Time) ProjectionServiceOption {
	return func(s *projectionService) {
		s.Clock = clock
	}
}

// WithProjectionRecorder reports every engine run to recorder.
func WithProjectionRecorder(recorder ProjectionRecorder) ProjectionServiceOption {
	return func(s *projectionService) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// NewProjectionService creates the projection service. Requests for more
// than maxMonths forecast months are rejected.
func NewProjectionService(
	accountRepo portsrepo.AccountReader,
	eventRepo portsrepo.EventReader,
	userRepo portsrepo.UserReader,
	maxMonths int,
	options ...ProjectionServiceOption,
) portssvc.ProjectionSvcFacade {
	svc := &projectionService{
		accountRepo: accountRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		maxMonths:   maxMonths,
		recorder:    nopProjectionRecorder{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProjectionSvcFacade = (*projectionService)(nil)

// projectionInputs is everything one engine run reads from storage.
type projectionInputs struct {
	user     *domain.User
	accounts []domain.Account
	events   []domain.AccountEvent
}

func (s *projectionService) load(ctx context.Context, userID string, months int) (*projectionInputs, error) {
	if months < 0 || months > s.maxMonths {
		return nil, fmt.Errorf("%w: months must be between 0 and %d", apperrors.ErrValidation, s.maxMonths)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to load user for projection")
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for projection")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	events, err := s.eventRepo.ListEventsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load events for projection")
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return &projectionInputs{user: user, accounts: accounts, events: events}, nil
}

func inflationRate(user *domain.User, override *float64) decimal.Decimal {
	if rate := dto.InflationOverride(override); rate != nil {
		return *rate
	}
	return user.InflationRate
}

func (s *projectionService) GetTimeline(ctx context.Context, userID string, q dto.ProjectionQuery) (*domain.Timeline, error) {
	in, err := s.load(ctx, userID, q.Months)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	started := time.Now()
	rate := inflationRate(in.user, q.InflationRate)

	historyMonths := 0
	var history []domain.ProjectionPoint
	if q.History {
		historyMonths = projection.ComputeHistoryMonths(in.events, now)
		history = projection.BuildHistory(in.accounts, in.events, historyMonths, now)
	}
	points := projection.Stitch(history, projection.Project(in.accounts, q.Months))
	if q.Real {
		points = projection.Deflate(points, rate, projection.DeflateHistory)
	}
	if q.Thin {
		points = projection.Thin(points, projection.ThinStep(q.Months))
	}

	timeline := &domain.Timeline{
		Origin:         now,
		Points:         points,
		HistoryMonths:  historyMonths,
		ForecastMonths: q.Months,
		InflationRate:  rate,
		Real:           q.Real,
	}
	if in.user.Birthday != nil {
		timeline.Ages = make(map[int]int, len(points))
		for _, p := range points {
			timeline.Ages[p.Month] = projection.AgeAtMonth(*in.user.Birthday, p.Month, now)
		}
	}

	s.recorder.RecordProjection("aggregate", len(points), time.Since(started))
	s.LogDebug(ctx, "Projection computed",
		slog.Int("accounts", len(in.accounts)),
		slog.Int("history_months", historyMonths),
		slog.Int("forecast_months", q.Months))
	return timeline, nil
}

func (s *projectionService) GetAccountTimeline(ctx context.Context, userID string, q dto.AccountProjectionQuery) (*domain.AccountTimeline, error) {
	in, err := s.load(ctx, userID, q.Months)
	if err != nil {
		return nil, err
	}

	accounts, events := filterByCategory(in.accounts, in.events, q.Category)
	sign := projection.SignMagnitude
	if q.Sign == "signed" {
		sign = projection.SignSigned
	}

	now := s.Now()
	started := time.Now()
	rate := inflationRate(in.user, q.InflationRate)

	historyMonths := 0
	var history []domain.AccountPoint
	if q.History {
		historyMonths = projection.ComputeHistoryMonths(events, now)
		history = projection.BuildHistoryByAccount(accounts, events, historyMonths, sign, now)
	}
	points := projection.Stitch(history, projection.ProjectByAccount(accounts, q.Months, sign))
	if q.Real {
		points = projection.DeflateByAccount(points, rate, projection.NominalHistory)
	}
	if q.Thin {
		points = projection.Thin(points, projection.ThinStep(q.Months))
	}

	s.recorder.RecordProjection("accounts", len(points), time.Since(started))
	return &domain.AccountTimeline{
		Origin:         now,
		Accounts:       accounts,
		Points:         points,
		HistoryMonths:  historyMonths,
		ForecastMonths: q.Months,
		InflationRate:  rate,
		Real:           q.Real,
		Signed:         sign == projection.SignSigned,
	}, nil
}

// filterByCategory keeps the accounts of category and their events. An empty
// category keeps everything.
func filterByCategory(accounts []domain.Account, events []domain.AccountEvent, category domain.AccountCategory) ([]domain.Account, []domain.AccountEvent) {
	if category == "" {
		return accounts, events
	}
	keep := make(map[string]bool)
	filtered := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Category == category {
			keep[a.AccountID] = true
			filtered = append(filtered, a)
		}
	}
	filteredEvents := make([]domain.AccountEvent, 0, len(events))
	for _, e := range events {
		if keep[e.AccountID] {
			filteredEvents = append(filteredEvents, e)
		}
	}
	return filtered, filteredEvents
}
