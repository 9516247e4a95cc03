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

type interviewUsecase struct {
	sessions *cache.Manager
	ivRepo   domain.InterviewRepository
	appRepo  domain.ApplicationRepository
	validate *validator.Validate
	policy   domain.DeleteConfirmPolicy
}

// NewInterviewUsecase creates a new interview usecase
func NewInterviewUsecase(
	sessions *cache.Manager,
	ivRepo domain.InterviewRepository,
	appRepo domain.ApplicationRepository,
	validate *validator.Validate,
	policy domain.DeleteConfirmPolicy,
) domain.InterviewUsecase {
	return &interviewUsecase{
		sessions: sessions,
		ivRepo:   ivRepo,
		appRepo:  appRepo,
		validate: validate,
		policy:   policy,
	}
}

// List refreshes the interview cache for one application, or for the whole
// account when applicationID is empty, and returns its contents.
func (uc *interviewUsecase) List(ctx context.Context, userID, applicationID string) ([]domain.Interview, error) {
	if applicationID != "" {
		if err := uc.checkApplicationOwner(ctx, userID, applicationID); err != nil {
			return nil, err
		}
	}

	ivs := uc.sessions.Session(userID).Interviews
	if err := ivs.Fetch(ctx, applicationID); err != nil {
		return nil, apperror.Internal(err)
	}
	return ivs.Snapshot(), nil
}

// Get returns one interview, from cache when possible.
func (uc *interviewUsecase) Get(ctx context.Context, userID, id string) (*domain.Interview, error) {
	if iv, ok := uc.sessions.Session(userID).Interviews.Get(id); ok {
		return iv, nil
	}

	iv, err := uc.ivRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, apperror.Internal(err)
	}
	if err := uc.checkApplicationOwner(ctx, userID, iv.ApplicationID); err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	return iv, nil
}

// Create validates the form, checks the target application belongs to the
// user, then inserts through the cache.
func (uc *interviewUsecase) Create(ctx context.Context, userID string, form *domain.InterviewForm) (*domain.Interview, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	ivDate, err := parseDateTime(form.InterviewDate)
	if err != nil {
		return nil, apperror.BadRequest("Interview date must be an ISO date or datetime")
	}

	if err := uc.checkApplicationOwner(ctx, userID, form.ApplicationID); err != nil {
		return nil, err
	}

	status := form.Status
	if status == "" {
		status = domain.InterviewStatusScheduled
	}

	iv := &domain.Interview{
		ApplicationID:    form.ApplicationID,
		RoundNumber:      form.RoundNumber,
		InterviewDate:    ivDate,
		InterviewType:    form.InterviewType,
		Status:           status,
		InterviewerName:  form.InterviewerName,
		InterviewerTitle: form.InterviewerTitle,
		Feedback:         form.Feedback,
		NextSteps:        form.NextSteps,
		Notes:            form.Notes,
	}

	if err := uc.sessions.Session(userID).Interviews.Add(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}
	return iv, nil
}

func (uc *interviewUsecase) Update(ctx context.Context, userID, id string, form *domain.InterviewUpdateForm) (*domain.Interview, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if _, err := uc.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	patch := domain.InterviewPatch{
		RoundNumber:      form.RoundNumber,
		InterviewType:    form.InterviewType,
		Status:           form.Status,
		InterviewerName:  form.InterviewerName,
		InterviewerTitle: form.InterviewerTitle,
		Feedback:         form.Feedback,
		NextSteps:        form.NextSteps,
		Notes:            form.Notes,
	}
	if form.InterviewDate != nil {
		d, err := parseDateTime(*form.InterviewDate)
		if err != nil {
			return nil, apperror.BadRequest("Interview date must be an ISO date or datetime")
		}
		patch.InterviewDate = &d
	}
	if patch.IsEmpty() {
		return nil, apperror.BadRequest("Nothing to update")
	}

	updated, err := uc.sessions.Session(userID).Interviews.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (uc *interviewUsecase) Delete(ctx context.Context, userID, id string, confirmed bool) error {
	if uc.policy.Interviews && !confirmed {
		return apperror.BadRequest("Pass confirm=true to delete this interview.")
	}

	if _, err := uc.Get(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.sessions.Session(userID).Interviews.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// checkApplicationOwner confirms the application exists and belongs to the
// user. A foreign application reads as not found, never as forbidden.
func (uc *interviewUsecase) checkApplicationOwner(ctx context.Context, userID, applicationID string) error {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	if app.UserID != userID {
		return apperror.NotFound("Application not found")
	}
	return nil
}

// parseDateTime accepts the datetime formats the forms produce: full RFC3339,
// the datetime-local shape without zone, or a bare date.
func parseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized datetime format")
}
