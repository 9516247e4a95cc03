package postgres

import (
	"testing"
	"time"

	"jtrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestApplicationRowRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	nextStep := now.AddDate(0, 0, 7)

	app := &domain.Application{
		ID:                "6f1e1c2a-0000-4000-8000-000000000001",
		UserID:            "6f1e1c2a-0000-4000-8000-000000000002",
		CompanyName:       "Acme",
		PositionTitle:     "Backend Engineer",
		ApplicationDate:   now,
		ApplicationSource: domain.SourceReferral,
		Status:            domain.StatusInterviewing,
		JobDescription:    strPtr("Build services"),
		Location:          strPtr("Berlin"),
		JobType:           strPtr("FULL_TIME"),
		WorkMode:          strPtr("REMOTE"),
		SalaryRange:       &domain.SalaryRange{Min: 90000, Max: 110000, Currency: "EUR", Period: "YEARLY"},
		NextStep:          strPtr("Final round"),
		NextStepDate:      &nextStep,
		Notes:             strPtr("Referred by Dana"),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	row, err := applicationToRow(app)
	require.NoError(t, err)
	back, err := applicationFromRow(row)
	require.NoError(t, err)

	assert.Equal(t, app, back)
}

func TestApplicationRowRoundTripMinimal(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	app := &domain.Application{
		ID:                "6f1e1c2a-0000-4000-8000-000000000003",
		UserID:            "6f1e1c2a-0000-4000-8000-000000000004",
		CompanyName:       "Acme",
		PositionTitle:     "Engineer",
		ApplicationDate:   now,
		ApplicationSource: domain.SourceOther,
		Status:            domain.StatusDraft,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	row, err := applicationToRow(app)
	require.NoError(t, err)
	assert.Nil(t, row.SalaryRange)

	back, err := applicationFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, app, back)
	assert.Nil(t, back.SalaryRange)
}

func TestApplicationFromRowRejectsMissingRequired(t *testing.T) {
	row := &applicationRow{ID: "x", PositionTitle: "Engineer"}
	_, err := applicationFromRow(row)
	assert.Error(t, err)

	row = &applicationRow{ID: "x", CompanyName: "Acme"}
	_, err = applicationFromRow(row)
	assert.Error(t, err)
}

func TestApplicationPatchColumns(t *testing.T) {
	status := domain.StatusOffered
	patch := domain.ApplicationPatch{
		Status:      &status,
		SalaryRange: &domain.SalaryRange{Min: 120000, Max: 150000, Currency: "USD", Period: "YEARLY"},
	}

	cols, vals, err := applicationPatchColumns(patch)
	require.NoError(t, err)

	assert.Equal(t, []string{"status", "salary_range"}, cols)
	require.Len(t, vals, 2)
	assert.Equal(t, domain.StatusOffered, vals[0])
	assert.JSONEq(t, `{"min":120000,"max":150000,"currency":"USD","period":"YEARLY"}`, string(vals[1].([]byte)))
}

func TestApplicationPatchColumnsEmpty(t *testing.T) {
	cols, vals, err := applicationPatchColumns(domain.ApplicationPatch{})
	require.NoError(t, err)
	assert.Empty(t, cols)
	assert.Empty(t, vals)
}

func TestInterviewRowRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	iv := &domain.Interview{
		ID:              "6f1e1c2a-0000-4000-8000-000000000005",
		ApplicationID:   "6f1e1c2a-0000-4000-8000-000000000001",
		RoundNumber:     2,
		InterviewDate:   now,
		InterviewType:   domain.InterviewTypeTechnical,
		Status:          domain.InterviewStatusScheduled,
		InterviewerName: strPtr("Sam"),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	assert.Equal(t, iv, interviewFromRow(interviewToRow(iv)))
}

func TestInterviewPatchColumns(t *testing.T) {
	round := 3
	status := domain.InterviewStatusCompleted
	cols, vals := interviewPatchColumns(domain.InterviewPatch{RoundNumber: &round, Status: &status})

	assert.Equal(t, []string{"round_number", "status"}, cols)
	assert.Equal(t, []any{3, domain.InterviewStatusCompleted}, vals)
}

func TestReferralRowRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	ref := &domain.Referral{
		ID:            "6f1e1c2a-0000-4000-8000-000000000006",
		ApplicationID: "6f1e1c2a-0000-4000-8000-000000000001",
		ReferrerName:  "Dana",
		ReferrerEmail: strPtr("dana@example.com"),
		Relationship:  "Former colleague",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	assert.Equal(t, ref, referralFromRow(referralToRow(ref)))
}

func TestReferralPatchColumns(t *testing.T) {
	cols, vals := referralPatchColumns(domain.ReferralPatch{
		ReferrerEmail: strPtr("new@example.com"),
		Notes:         strPtr("Pinged again"),
	})

	assert.Equal(t, []string{"referrer_email", "notes"}, cols)
	assert.Equal(t, []any{"new@example.com", "Pinged again"}, vals)
}
