package usecase

import (
	"context"
	"errors"
	"strings"

	"jtrack-backend/internal/cache"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"
	"jtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type referralUsecase struct {
	sessions *cache.Manager
	refRepo  domain.ReferralRepository
	appRepo  domain.ApplicationRepository
	validate *validator.Validate
	policy   domain.DeleteConfirmPolicy
}

// NewReferralUsecase creates a new referral usecase
func NewReferralUsecase(
	sessions *cache.Manager,
	refRepo domain.ReferralRepository,
	appRepo domain.ApplicationRepository,
	validate *validator.Validate,
	policy domain.DeleteConfirmPolicy,
) domain.ReferralUsecase {
	return &referralUsecase{
		sessions: sessions,
		refRepo:  refRepo,
		appRepo:  appRepo,
		validate: validate,
		policy:   policy,
	}
}

// List refreshes the referral cache for one application, or for the whole
// account when applicationID is empty, and returns its contents.
func (uc *referralUsecase) List(ctx context.Context, userID, applicationID string) ([]domain.Referral, error) {
	if applicationID != "" {
		if err := uc.checkApplicationOwner(ctx, userID, applicationID); err != nil {
			return nil, err
		}
	}

	refs := uc.sessions.Session(userID).Referrals
	if err := refs.Fetch(ctx, applicationID); err != nil {
		return nil, apperror.Internal(err)
	}
	return refs.Snapshot(), nil
}

// Get returns one referral, from cache when possible.
func (uc *referralUsecase) Get(ctx context.Context, userID, id string) (*domain.Referral, error) {
	if ref, ok := uc.sessions.Session(userID).Referrals.Get(id); ok {
		return ref, nil
	}

	ref, err := uc.refRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Referral not found")
		}
		return nil, apperror.Internal(err)
	}
	if err := uc.checkApplicationOwner(ctx, userID, ref.ApplicationID); err != nil {
		return nil, apperror.NotFound("Referral not found")
	}
	return ref, nil
}

// Create validates the form, checks the target application belongs to the
// user, then inserts through the cache.
func (uc *referralUsecase) Create(ctx context.Context, userID string, form *domain.ReferralForm) (*domain.Referral, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := uc.checkApplicationOwner(ctx, userID, form.ApplicationID); err != nil {
		return nil, err
	}

	ref := &domain.Referral{
		ApplicationID: form.ApplicationID,
		ReferrerName:  form.ReferrerName,
		ReferrerEmail: form.ReferrerEmail,
		ReferrerPhone: form.ReferrerPhone,
		Relationship:  form.Relationship,
		Notes:         form.Notes,
	}

	if err := uc.sessions.Session(userID).Referrals.Add(ctx, ref); err != nil {
		return nil, apperror.Internal(err)
	}
	return ref, nil
}

func (uc *referralUsecase) Update(ctx context.Context, userID, id string, form *domain.ReferralUpdateForm) (*domain.Referral, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if _, err := uc.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	patch := domain.ReferralPatch{
		ReferrerName:  form.ReferrerName,
		ReferrerEmail: form.ReferrerEmail,
		ReferrerPhone: form.ReferrerPhone,
		Relationship:  form.Relationship,
		Notes:         form.Notes,
	}
	if patch.IsEmpty() {
		return nil, apperror.BadRequest("Nothing to update")
	}

	updated, err := uc.sessions.Session(userID).Referrals.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Referral not found")
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (uc *referralUsecase) Delete(ctx context.Context, userID, id string, confirmed bool) error {
	if uc.policy.Referrals && !confirmed {
		return apperror.BadRequest("Pass confirm=true to delete this referral.")
	}

	if _, err := uc.Get(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.sessions.Session(userID).Referrals.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Referral not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *referralUsecase) checkApplicationOwner(ctx context.Context, userID, applicationID string) error {
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
