package domain

import (
	"context"
	"time"
)

// Interview type constants
const (
	InterviewTypePhone      = "PHONE"
	InterviewTypeVideo      = "VIDEO"
	InterviewTypeOnSite     = "ON_SITE"
	InterviewTypeTechnical  = "TECHNICAL"
	InterviewTypeBehavioral = "BEHAVIORAL"
)

// Interview status constants
const (
	InterviewStatusScheduled   = "SCHEDULED"
	InterviewStatusCompleted   = "COMPLETED"
	InterviewStatusCancelled   = "CANCELLED"
	InterviewStatusRescheduled = "RESCHEDULED"
)

// Interview is one round of interviewing for an application. RoundNumber is
// the ordering key within an application; uniqueness is not enforced.
type Interview struct {
	ID               string    `json:"id"`
	ApplicationID    string    `json:"application_id"`
	RoundNumber      int       `json:"round_number"`
	InterviewDate    time.Time `json:"interview_date"`
	InterviewType    string    `json:"interview_type"`
	Status           string    `json:"status"`
	InterviewerName  *string   `json:"interviewer_name,omitempty"`
	InterviewerTitle *string   `json:"interviewer_title,omitempty"`
	Feedback         *string   `json:"feedback,omitempty"`
	NextSteps        *string   `json:"next_steps,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// InterviewPatch is a partial update for an interview. Nil leaves the column
// alone. ApplicationID is deliberately absent: interviews never move between
// applications.
type InterviewPatch struct {
	RoundNumber      *int       `json:"round_number,omitempty"`
	InterviewDate    *time.Time `json:"interview_date,omitempty"`
	InterviewType    *string    `json:"interview_type,omitempty"`
	Status           *string    `json:"status,omitempty"`
	InterviewerName  *string    `json:"interviewer_name,omitempty"`
	InterviewerTitle *string    `json:"interviewer_title,omitempty"`
	Feedback         *string    `json:"feedback,omitempty"`
	NextSteps        *string    `json:"next_steps,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
}

func (p *InterviewPatch) IsEmpty() bool {
	return p.RoundNumber == nil && p.InterviewDate == nil && p.InterviewType == nil &&
		p.Status == nil && p.InterviewerName == nil && p.InterviewerTitle == nil &&
		p.Feedback == nil && p.NextSteps == nil && p.Notes == nil
}

// InterviewRepository defines remote-store access for interviews.
// Listings are ordered by interview_date ascending.
type InterviewRepository interface {
	ListByApplication(ctx context.Context, applicationID string) ([]Interview, error)
	ListByUser(ctx context.Context, userID string) ([]Interview, error)
	GetByID(ctx context.Context, id string) (*Interview, error)
	Insert(ctx context.Context, iv *Interview) error
	Update(ctx context.Context, id string, patch InterviewPatch) (*Interview, error)
	Delete(ctx context.Context, id string) error
}

// InterviewUsecase defines business logic for interview rounds.
// An empty applicationID on List means every interview the user owns.
type InterviewUsecase interface {
	List(ctx context.Context, userID, applicationID string) ([]Interview, error)
	Get(ctx context.Context, userID, id string) (*Interview, error)
	Create(ctx context.Context, userID string, form *InterviewForm) (*Interview, error)
	Update(ctx context.Context, userID, id string, form *InterviewUpdateForm) (*Interview, error)
	Delete(ctx context.Context, userID, id string, confirmed bool) error
}
