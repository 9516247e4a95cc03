package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jtrack-backend/internal/cache"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"
	"jtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	sessions *cache.Manager
	appRepo  domain.ApplicationRepository
	validate *validator.Validate
	policy   domain.DeleteConfirmPolicy
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	sessions *cache.Manager,
	appRepo domain.ApplicationRepository,
	validate *validator.Validate,
	policy domain.DeleteConfirmPolicy,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		sessions: sessions,
		appRepo:  appRepo,
		validate: validate,
		policy:   policy,
	}
}

// List refreshes the user's application cache and returns its contents.
// With sorted=true the records are ordered by application date, newest first,
// instead of cache order.
func (uc *applicationUsecase) List(ctx context.Context, userID string, sorted bool) ([]domain.Application, error) {
	apps := uc.sessions.Session(userID).Applications
	if err := apps.Fetch(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if sorted {
		return apps.SortedByDateDesc(), nil
	}
	return apps.Snapshot(), nil
}

// Get returns one application, from cache when possible.
func (uc *applicationUsecase) Get(ctx context.Context, userID, id string) (*domain.Application, error) {
	if app, ok := uc.sessions.Session(userID).Applications.Get(id); ok {
		return app, nil
	}

	app, err := uc.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if app.UserID != userID {
		return nil, apperror.NotFound("Application not found")
	}
	return app, nil
}

// Create validates the form in full, then inserts through the cache. No
// remote call happens while the form is invalid.
func (uc *applicationUsecase) Create(ctx context.Context, userID string, form *domain.ApplicationForm) (*domain.Application, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	appDate, err := parseDate(form.ApplicationDate)
	if err != nil {
		return nil, apperror.BadRequest("Application date must be in YYYY-MM-DD format")
	}

	status := form.Status
	if status == "" {
		status = domain.StatusApplied
	}

	app := &domain.Application{
		UserID:            userID,
		CompanyName:       form.CompanyName,
		PositionTitle:     form.PositionTitle,
		ApplicationDate:   appDate,
		ApplicationSource: form.ApplicationSource,
		Status:            status,
		JobDescription:    form.JobDescription,
		Location:          form.Location,
		JobType:           form.JobType,
		WorkMode:          form.WorkMode,
		SalaryRange:       form.SalaryRange,
		NextStep:          form.NextStep,
		Notes:             form.Notes,
	}
	if form.NextStepDate != nil {
		d, err := parseDate(*form.NextStepDate)
		if err != nil {
			return nil, apperror.BadRequest("Next step date must be in YYYY-MM-DD format")
		}
		app.NextStepDate = &d
	}

	if err := uc.sessions.Session(userID).Applications.Add(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// CreateSample seeds the account with one example application so a fresh
// dashboard has something to show.
func (uc *applicationUsecase) CreateSample(ctx context.Context, userID string) (*domain.Application, error) {
	location := "San Francisco, CA"
	jobType := "FULL_TIME"
	workMode := "HYBRID"
	notes := "Sample application. Edit or delete it once you add your own."

	app := &domain.Application{
		UserID:            userID,
		CompanyName:       "Tech Corp",
		PositionTitle:     "Software Engineer",
		ApplicationDate:   time.Now().Truncate(24 * time.Hour),
		ApplicationSource: domain.SourceLinkedIn,
		Status:            domain.StatusApplied,
		Location:          &location,
		JobType:           &jobType,
		WorkMode:          &workMode,
		SalaryRange: &domain.SalaryRange{
			Min:      100000,
			Max:      140000,
			Currency: "USD",
			Period:   "YEARLY",
		},
		Notes: &notes,
	}

	if err := uc.sessions.Session(userID).Applications.Add(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// Update validates the patch form, then applies it through the cache. A miss
// on the remote store surfaces as not found; nothing is invented locally.
func (uc *applicationUsecase) Update(ctx context.Context, userID, id string, form *domain.ApplicationUpdateForm) (*domain.Application, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if _, err := uc.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	patch := domain.ApplicationPatch{
		CompanyName:       form.CompanyName,
		PositionTitle:     form.PositionTitle,
		ApplicationSource: form.ApplicationSource,
		Status:            form.Status,
		JobDescription:    form.JobDescription,
		Location:          form.Location,
		JobType:           form.JobType,
		WorkMode:          form.WorkMode,
		SalaryRange:       form.SalaryRange,
		NextStep:          form.NextStep,
		Notes:             form.Notes,
	}
	if form.ApplicationDate != nil {
		d, err := parseDate(*form.ApplicationDate)
		if err != nil {
			return nil, apperror.BadRequest("Application date must be in YYYY-MM-DD format")
		}
		patch.ApplicationDate = &d
	}
	if form.NextStepDate != nil {
		d, err := parseDate(*form.NextStepDate)
		if err != nil {
			return nil, apperror.BadRequest("Next step date must be in YYYY-MM-DD format")
		}
		patch.NextStepDate = &d
	}
	if patch.IsEmpty() {
		return nil, apperror.BadRequest("Nothing to update")
	}

	updated, err := uc.sessions.Session(userID).Applications.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

// Delete removes the application after the confirmation policy is satisfied.
// The store cascades to interviews and referrals; the sibling caches follow
// via the delete event.
func (uc *applicationUsecase) Delete(ctx context.Context, userID, id string, confirmed bool) error {
	if uc.policy.Applications && !confirmed {
		return apperror.BadRequest("Deleting an application removes its interviews and referrals. Pass confirm=true to proceed.")
	}

	if _, err := uc.Get(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.sessions.Session(userID).Applications.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// parseDate parses a YYYY-MM-DD form value.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
