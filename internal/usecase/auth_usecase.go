package usecase

import (
	"context"
	"errors"
	"strings"

	"jtrack-backend/internal/cache"
	"jtrack-backend/internal/domain"
	"jtrack-backend/pkg/apperror"
	"jtrack-backend/pkg/auth"
	"jtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	gotrue   *auth.GoTrueClient
	userRepo domain.UserRepository
	sessions *cache.Manager
	validate *validator.Validate
}

// NewAuthUsecase creates a new auth usecase. Credentials never touch the
// local store; Supabase auth owns them.
func NewAuthUsecase(
	gotrue *auth.GoTrueClient,
	userRepo domain.UserRepository,
	sessions *cache.Manager,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		gotrue:   gotrue,
		userRepo: userRepo,
		sessions: sessions,
		validate: validate,
	}
}

func (uc *authUsecase) SignUp(ctx context.Context, form *domain.SignUpForm) (*domain.AuthSession, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	session, err := uc.gotrue.SignUp(ctx, form.Email, form.Password)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	out := toAuthSession(session)
	if out.User.ID != "" {
		if err := uc.EnsureUser(ctx, out.User.ID, out.User.Email); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (uc *authUsecase) SignIn(ctx context.Context, form *domain.SignInForm) (*domain.AuthSession, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	session, err := uc.gotrue.SignIn(ctx, form.Email, form.Password)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	out := toAuthSession(session)
	if err := uc.EnsureUser(ctx, out.User.ID, out.User.Email); err != nil {
		return nil, err
	}
	return out, nil
}

// SignOut revokes the Supabase session and discards the user's caches.
func (uc *authUsecase) SignOut(ctx context.Context, userID, accessToken string) error {
	if err := uc.gotrue.SignOut(ctx, accessToken); err != nil {
		return apperror.Internal(err)
	}
	uc.sessions.Drop(userID)
	return nil
}

func (uc *authUsecase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// EnsureUser mirrors the Supabase auth user into the local users table.
// Idempotent; the upsert re-syncs the email on every call.
func (uc *authUsecase) EnsureUser(ctx context.Context, id, email string) error {
	user := &domain.User{ID: id, Email: email}
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func toAuthSession(s *auth.Session) *domain.AuthSession {
	return &domain.AuthSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		User: domain.User{
			ID:    s.User.ID,
			Email: s.User.Email,
		},
	}
}
