package usecase

import (
	"context"
	"time"

	"jtrack-backend/internal/analytics"
	"jtrack-backend/internal/cache"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"
)

// AnalyticsUsecase derives dashboard statistics from a fresh snapshot of the
// user's applications. All aggregation is done in the analytics package; this
// layer only fetches and filters.
type AnalyticsUsecase interface {
	Summary(ctx context.Context, userID string, tf analytics.Timeframe) (*analytics.Summary, error)
	StatusCounts(ctx context.Context, userID string, tf analytics.Timeframe) (map[string]int, error)
	Timeline(ctx context.Context, userID string, tf analytics.Timeframe) ([]analytics.TimelinePoint, error)
	Sources(ctx context.Context, userID string, tf analytics.Timeframe) ([]analytics.SourceStats, error)
	SalaryBuckets(ctx context.Context, userID string, tf analytics.Timeframe) ([]analytics.SalaryBucket, error)
}

type analyticsUsecase struct {
	sessions *cache.Manager
	now      func() time.Time
}

// NewAnalyticsUsecase creates a new analytics usecase
func NewAnalyticsUsecase(sessions *cache.Manager) AnalyticsUsecase {
	return &analyticsUsecase{sessions: sessions, now: time.Now}
}

// snapshot refreshes the application cache and returns the records inside
// the requested timeframe.
func (uc *analyticsUsecase) snapshot(ctx context.Context, userID string, tf analytics.Timeframe) ([]domain.Application, error) {
	apps := uc.sessions.Session(userID).Applications
	if err := apps.Fetch(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	return analytics.FilterByTimeframe(apps.Snapshot(), tf, uc.now()), nil
}

func (uc *analyticsUsecase) Summary(ctx context.Context, userID string, tf analytics.Timeframe) (*analytics.Summary, error) {
	apps, err := uc.snapshot(ctx, userID, tf)
	if err != nil {
		return nil, err
	}
	summary := analytics.Summarize(apps)
	return &summary, nil
}

func (uc *analyticsUsecase) StatusCounts(ctx context.Context, userID string, tf analytics.Timeframe) (map[string]int, error) {
	apps, err := uc.snapshot(ctx, userID, tf)
	if err != nil {
		return nil, err
	}
	return analytics.StatusCounts(apps), nil
}

func (uc *analyticsUsecase) Timeline(ctx context.Context, userID string, tf analytics.Timeframe) ([]analytics.TimelinePoint, error) {
	apps, err := uc.snapshot(ctx, userID, tf)
	if err != nil {
		return nil, err
	}
	return analytics.Timeline(apps), nil
}

func (uc *analyticsUsecase) Sources(ctx context.Context, userID string, tf analytics.Timeframe) ([]analytics.SourceStats, error) {
	apps, err := uc.snapshot(ctx, userID, tf)
	if err != nil {
		return nil, err
	}
	return analytics.SourceBreakdown(apps), nil
}

func (uc *analyticsUsecase) SalaryBuckets(ctx context.Context, userID string, tf analytics.Timeframe) ([]analytics.SalaryBucket, error) {
	apps, err := uc.snapshot(ctx, userID, tf)
	if err != nil {
		return nil, err
	}
	return analytics.SalaryBuckets(apps), nil
}
