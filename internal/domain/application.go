package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("resource not found")

// Application status constants
// Typical progression: DRAFT → APPLIED → INTERVIEWING → OFFERED → ACCEPTED,
// with REJECTED and WITHDRAWN as terminal branches.
const (
	StatusDraft        = "DRAFT"
	StatusApplied      = "APPLIED"
	StatusInterviewing = "INTERVIEWING"
	StatusRejected     = "REJECTED"
	StatusOffered      = "OFFERED"
	StatusAccepted     = "ACCEPTED"
	StatusWithdrawn    = "WITHDRAWN"
)

// ApplicationStatuses lists every valid status in progression order.
// Aggregations key off this list so absent statuses still report zero.
var ApplicationStatuses = []string{
	StatusDraft,
	StatusApplied,
	StatusInterviewing,
	StatusOffered,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
}

// Application source constants
const (
	SourceLinkedIn       = "LINKEDIN"
	SourceCompanyWebsite = "COMPANY_WEBSITE"
	SourceJobBoard       = "JOB_BOARD"
	SourceReferral       = "REFERRAL"
	SourceOther          = "OTHER"
)

// SalaryRange is stored as a single jsonb column on the applications table
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"` // USD / EUR / GBP / INR / CAD
	Period   string `json:"period"`   // YEARLY / MONTHLY / HOURLY
}

// Application represents one tracked job application owned by a user.
// Required fields (present after creation): CompanyName, PositionTitle,
// ApplicationDate, Status. Every optional field is a pointer so that absence
// survives the round trip to the store instead of collapsing to zero values.
type Application struct {
	ID                string       `json:"id"` // Supabase UUID
	UserID            string       `json:"user_id"`
	CompanyName       string       `json:"company_name"`
	PositionTitle     string       `json:"position_title"`
	ApplicationDate   time.Time    `json:"application_date"`
	ApplicationSource string       `json:"application_source"`
	Status            string       `json:"status"`
	JobDescription    *string      `json:"job_description,omitempty"`
	Location          *string      `json:"location,omitempty"`
	JobType           *string      `json:"job_type,omitempty"`  // FULL_TIME / PART_TIME / CONTRACT / INTERNSHIP
	WorkMode          *string      `json:"work_mode,omitempty"` // REMOTE / HYBRID / ON_SITE
	SalaryRange       *SalaryRange `json:"salary_range,omitempty"`
	NextStep          *string      `json:"next_step,omitempty"`
	NextStepDate      *time.Time   `json:"next_step_date,omitempty"`
	Notes             *string      `json:"notes,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// ApplicationPatch is a partial update. Nil means "leave the column alone";
// a non-nil pointer to a zero value means "clear it". Callers state which.
type ApplicationPatch struct {
	CompanyName       *string      `json:"company_name,omitempty"`
	PositionTitle     *string      `json:"position_title,omitempty"`
	ApplicationDate   *time.Time   `json:"application_date,omitempty"`
	ApplicationSource *string      `json:"application_source,omitempty"`
	Status            *string      `json:"status,omitempty"`
	JobDescription    *string      `json:"job_description,omitempty"`
	Location          *string      `json:"location,omitempty"`
	JobType           *string      `json:"job_type,omitempty"`
	WorkMode          *string      `json:"work_mode,omitempty"`
	SalaryRange       *SalaryRange `json:"salary_range,omitempty"`
	NextStep          *string      `json:"next_step,omitempty"`
	NextStepDate      *time.Time   `json:"next_step_date,omitempty"`
	Notes             *string      `json:"notes,omitempty"`
}

// IsEmpty reports whether the patch would update nothing.
func (p *ApplicationPatch) IsEmpty() bool {
	return p.CompanyName == nil && p.PositionTitle == nil && p.ApplicationDate == nil &&
		p.ApplicationSource == nil && p.Status == nil && p.JobDescription == nil &&
		p.Location == nil && p.JobType == nil && p.WorkMode == nil &&
		p.SalaryRange == nil && p.NextStep == nil && p.NextStepDate == nil && p.Notes == nil
}

// ApplicationRepository defines remote-store access for applications.
// The store assigns IDs and timestamps; Insert writes them back into app.
type ApplicationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Application, error) // created_at DESC
	GetByID(ctx context.Context, id string) (*Application, error)
	Insert(ctx context.Context, app *Application) error
	Update(ctx context.Context, id string, patch ApplicationPatch) (*Application, error)
	Delete(ctx context.Context, id string) error
}

// DeleteConfirmPolicy states which entities require confirm=true before a
// delete goes through. Applications default to requiring it.
type DeleteConfirmPolicy struct {
	Applications bool
	Interviews   bool
	Referrals    bool
}

// ApplicationUsecase defines business logic for tracked applications
type ApplicationUsecase interface {
	List(ctx context.Context, userID string, sorted bool) ([]Application, error)
	Get(ctx context.Context, userID, id string) (*Application, error)
	Create(ctx context.Context, userID string, form *ApplicationForm) (*Application, error)
	CreateSample(ctx context.Context, userID string) (*Application, error)
	Update(ctx context.Context, userID, id string, form *ApplicationUpdateForm) (*Application, error)
	Delete(ctx context.Context, userID, id string, confirmed bool) error
}
