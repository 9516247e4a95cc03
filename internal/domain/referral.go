package domain

import (
	"context"
	"time"
)

// Referral records who referred the user for an application.
// ReferrerName and Relationship are required; contact details are optional.
type Referral struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	ReferrerName  string    `json:"referrer_name"`
	ReferrerEmail *string   `json:"referrer_email,omitempty"`
	ReferrerPhone *string   `json:"referrer_phone,omitempty"`
	Relationship  string    `json:"relationship"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReferralPatch is a partial update for a referral.
type ReferralPatch struct {
	ReferrerName  *string `json:"referrer_name,omitempty"`
	ReferrerEmail *string `json:"referrer_email,omitempty"`
	ReferrerPhone *string `json:"referrer_phone,omitempty"`
	Relationship  *string `json:"relationship,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (p *ReferralPatch) IsEmpty() bool {
	return p.ReferrerName == nil && p.ReferrerEmail == nil && p.ReferrerPhone == nil &&
		p.Relationship == nil && p.Notes == nil
}

// ReferralRepository defines remote-store access for referrals.
// Listings are ordered by created_at descending.
type ReferralRepository interface {
	ListByApplication(ctx context.Context, applicationID string) ([]Referral, error)
	ListByUser(ctx context.Context, userID string) ([]Referral, error)
	GetByID(ctx context.Context, id string) (*Referral, error)
	Insert(ctx context.Context, ref *Referral) error
	Update(ctx context.Context, id string, patch ReferralPatch) (*Referral, error)
	Delete(ctx context.Context, id string) error
}

// ReferralUsecase defines business logic for referrals.
type ReferralUsecase interface {
	List(ctx context.Context, userID, applicationID string) ([]Referral, error)
	Get(ctx context.Context, userID, id string) (*Referral, error)
	Create(ctx context.Context, userID string, form *ReferralForm) (*Referral, error)
	Update(ctx context.Context, userID, id string, form *ReferralUpdateForm) (*Referral, error)
	Delete(ctx context.Context, userID, id string, confirmed bool) error
}
