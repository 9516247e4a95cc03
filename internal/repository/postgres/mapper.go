package postgres

import (
	"encoding/json"
	"fmt"
	"jtrack-backend/internal/domain"
	"time"
)

// Row types mirror the snake_case column layout of the Supabase tables.
// toRow/fromRow pairs below are the field mapper: total, mutually inverse
// translations between the Go entities and the stored shape. They never
// invent values for required business fields; a NULL company_name coming
// back from the store surfaces as an error, not a default.

type applicationRow struct {
	ID                string
	UserID            string
	CompanyName       string
	PositionTitle     string
	ApplicationDate   time.Time
	ApplicationSource string
	Status            string
	JobDescription    *string
	Location          *string
	JobType           *string
	WorkMode          *string
	SalaryRange       []byte // jsonb, nil when absent
	NextStep          *string
	NextStepDate      *time.Time
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func applicationToRow(app *domain.Application) (*applicationRow, error) {
	row := &applicationRow{
		ID:                app.ID,
		UserID:            app.UserID,
		CompanyName:       app.CompanyName,
		PositionTitle:     app.PositionTitle,
		ApplicationDate:   app.ApplicationDate,
		ApplicationSource: app.ApplicationSource,
		Status:            app.Status,
		JobDescription:    app.JobDescription,
		Location:          app.Location,
		JobType:           app.JobType,
		WorkMode:          app.WorkMode,
		NextStep:          app.NextStep,
		NextStepDate:      app.NextStepDate,
		Notes:             app.Notes,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
	if app.SalaryRange != nil {
		b, err := json.Marshal(app.SalaryRange)
		if err != nil {
			return nil, fmt.Errorf("marshal salary_range: %w", err)
		}
		row.SalaryRange = b
	}
	return row, nil
}

func applicationFromRow(row *applicationRow) (*domain.Application, error) {
	if row.CompanyName == "" || row.PositionTitle == "" {
		return nil, fmt.Errorf("application %s: required field missing in store", row.ID)
	}
	app := &domain.Application{
		ID:                row.ID,
		UserID:            row.UserID,
		CompanyName:       row.CompanyName,
		PositionTitle:     row.PositionTitle,
		ApplicationDate:   row.ApplicationDate,
		ApplicationSource: row.ApplicationSource,
		Status:            row.Status,
		JobDescription:    row.JobDescription,
		Location:          row.Location,
		JobType:           row.JobType,
		WorkMode:          row.WorkMode,
		NextStep:          row.NextStep,
		NextStepDate:      row.NextStepDate,
		Notes:             row.Notes,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
	if len(row.SalaryRange) > 0 {
		var sr domain.SalaryRange
		if err := json.Unmarshal(row.SalaryRange, &sr); err != nil {
			return nil, fmt.Errorf("unmarshal salary_range: %w", err)
		}
		app.SalaryRange = &sr
	}
	return app, nil
}

// applicationPatchColumns maps the non-nil patch fields to column/value pairs
// for a dynamic UPDATE. Absent fields are omitted entirely, never sent as NULL.
func applicationPatchColumns(p domain.ApplicationPatch) ([]string, []any, error) {
	var cols []string
	var vals []any
	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	if p.CompanyName != nil {
		add("company_name", *p.CompanyName)
	}
	if p.PositionTitle != nil {
		add("position_title", *p.PositionTitle)
	}
	if p.ApplicationDate != nil {
		add("application_date", *p.ApplicationDate)
	}
	if p.ApplicationSource != nil {
		add("application_source", *p.ApplicationSource)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.JobDescription != nil {
		add("job_description", *p.JobDescription)
	}
	if p.Location != nil {
		add("location", *p.Location)
	}
	if p.JobType != nil {
		add("job_type", *p.JobType)
	}
	if p.WorkMode != nil {
		add("work_mode", *p.WorkMode)
	}
	if p.SalaryRange != nil {
		b, err := json.Marshal(p.SalaryRange)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal salary_range: %w", err)
		}
		add("salary_range", b)
	}
	if p.NextStep != nil {
		add("next_step", *p.NextStep)
	}
	if p.NextStepDate != nil {
		add("next_step_date", *p.NextStepDate)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	return cols, vals, nil
}

type interviewRow struct {
	ID               string
	ApplicationID    string
	RoundNumber      int
	InterviewDate    time.Time
	InterviewType    string
	Status           string
	InterviewerName  *string
	InterviewerTitle *string
	Feedback         *string
	NextSteps        *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func interviewToRow(iv *domain.Interview) *interviewRow {
	return &interviewRow{
		ID:               iv.ID,
		ApplicationID:    iv.ApplicationID,
		RoundNumber:      iv.RoundNumber,
		InterviewDate:    iv.InterviewDate,
		InterviewType:    iv.InterviewType,
		Status:           iv.Status,
		InterviewerName:  iv.InterviewerName,
		InterviewerTitle: iv.InterviewerTitle,
		Feedback:         iv.Feedback,
		NextSteps:        iv.NextSteps,
		Notes:            iv.Notes,
		CreatedAt:        iv.CreatedAt,
		UpdatedAt:        iv.UpdatedAt,
	}
}

func interviewFromRow(row *interviewRow) *domain.Interview {
	return &domain.Interview{
		ID:               row.ID,
		ApplicationID:    row.ApplicationID,
		RoundNumber:      row.RoundNumber,
		InterviewDate:    row.InterviewDate,
		InterviewType:    row.InterviewType,
		Status:           row.Status,
		InterviewerName:  row.InterviewerName,
		InterviewerTitle: row.InterviewerTitle,
		Feedback:         row.Feedback,
		NextSteps:        row.NextSteps,
		Notes:            row.Notes,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func interviewPatchColumns(p domain.InterviewPatch) ([]string, []any) {
	var cols []string
	var vals []any
	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	if p.RoundNumber != nil {
		add("round_number", *p.RoundNumber)
	}
	if p.InterviewDate != nil {
		add("interview_date", *p.InterviewDate)
	}
	if p.InterviewType != nil {
		add("interview_type", *p.InterviewType)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.InterviewerName != nil {
		add("interviewer_name", *p.InterviewerName)
	}
	if p.InterviewerTitle != nil {
		add("interviewer_title", *p.InterviewerTitle)
	}
	if p.Feedback != nil {
		add("feedback", *p.Feedback)
	}
	if p.NextSteps != nil {
		add("next_steps", *p.NextSteps)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	return cols, vals
}

type referralRow struct {
	ID            string
	ApplicationID string
	ReferrerName  string
	ReferrerEmail *string
	ReferrerPhone *string
	Relationship  string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func referralToRow(ref *domain.Referral) *referralRow {
	return &referralRow{
		ID:            ref.ID,
		ApplicationID: ref.ApplicationID,
		ReferrerName:  ref.ReferrerName,
		ReferrerEmail: ref.ReferrerEmail,
		ReferrerPhone: ref.ReferrerPhone,
		Relationship:  ref.Relationship,
		Notes:         ref.Notes,
		CreatedAt:     ref.CreatedAt,
		UpdatedAt:     ref.UpdatedAt,
	}
}

func referralFromRow(row *referralRow) *domain.Referral {
	return &domain.Referral{
		ID:            row.ID,
		ApplicationID: row.ApplicationID,
		ReferrerName:  row.ReferrerName,
		ReferrerEmail: row.ReferrerEmail,
		ReferrerPhone: row.ReferrerPhone,
		Relationship:  row.Relationship,
		Notes:         row.Notes,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func referralPatchColumns(p domain.ReferralPatch) ([]string, []any) {
	var cols []string
	var vals []any
	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	if p.ReferrerName != nil {
		add("referrer_name", *p.ReferrerName)
	}
	if p.ReferrerEmail != nil {
		add("referrer_email", *p.ReferrerEmail)
	}
	if p.ReferrerPhone != nil {
		add("referrer_phone", *p.ReferrerPhone)
	}
	if p.Relationship != nil {
		add("relationship", *p.Relationship)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	return cols, vals
}
