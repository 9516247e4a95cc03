package domain

import (
	"context"
	"time"
)

// User mirrors the Supabase auth user into the local users table so that
// application rows have a stable owner reference.
type User struct {
	ID        string    `json:"id"` // Supabase UUID
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, user *User) error
}

// Preferences are per-user display settings. They are session furniture, not
// tracked data, so they live in Redis rather than the relational store.
type Preferences struct {
	ViewMode string `json:"view_mode"` // card / list
	FontSize string `json:"font_size"` // sm / md / lg
}

// DefaultPreferences returns the settings a user starts with.
func DefaultPreferences() Preferences {
	return Preferences{ViewMode: "card", FontSize: "md"}
}

type PreferenceRepository interface {
	Get(ctx context.Context, userID string) (*Preferences, error)
	Set(ctx context.Context, userID string, prefs Preferences) error
}

// AuthSession is an issued token pair plus the user it belongs to.
// AccessToken is empty after sign-up when email confirmation is pending.
type AuthSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	User         User   `json:"user"`
}

// AuthUsecase defines sign-up / sign-in flows delegated to Supabase auth.
type AuthUsecase interface {
	SignUp(ctx context.Context, form *SignUpForm) (*AuthSession, error)
	SignIn(ctx context.Context, form *SignInForm) (*AuthSession, error)
	SignOut(ctx context.Context, userID, accessToken string) error
	CurrentUser(ctx context.Context, userID string) (*User, error)
	EnsureUser(ctx context.Context, id, email string) error
}

// PreferenceUsecase defines business logic for display preferences.
type PreferenceUsecase interface {
	Get(ctx context.Context, userID string) (*Preferences, error)
	Update(ctx context.Context, userID string, form *PreferencesForm) (*Preferences, error)
}
