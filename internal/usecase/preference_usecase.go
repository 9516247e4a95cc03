package usecase

import (
	"context"
	"strings"

	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"
	"jtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type preferenceUsecase struct {
	prefRepo domain.PreferenceRepository
	validate *validator.Validate
}

// NewPreferenceUsecase creates a new preference usecase
func NewPreferenceUsecase(prefRepo domain.PreferenceRepository, validate *validator.Validate) domain.PreferenceUsecase {
	return &preferenceUsecase{prefRepo: prefRepo, validate: validate}
}

// Get returns the user's display preferences, falling back to defaults when
// none were ever saved.
func (uc *preferenceUsecase) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs, err := uc.prefRepo.Get(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return prefs, nil
}

func (uc *preferenceUsecase) Update(ctx context.Context, userID string, form *domain.PreferencesForm) (*domain.Preferences, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	prefs := domain.Preferences{ViewMode: form.ViewMode, FontSize: form.FontSize}
	if err := uc.prefRepo.Set(ctx, userID, prefs); err != nil {
		return nil, apperror.Internal(err)
	}
	return &prefs, nil
}
