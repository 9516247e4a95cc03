package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jtrack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const interviewColumns = `id, application_id, round_number, interview_date, interview_type,
		status, interviewer_name, interviewer_title, feedback, next_steps, notes,
		created_at, updated_at`

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var r interviewRow
	err := row.Scan(
		&r.ID, &r.ApplicationID, &r.RoundNumber, &r.InterviewDate, &r.InterviewType,
		&r.Status, &r.InterviewerName, &r.InterviewerTitle, &r.Feedback, &r.NextSteps,
		&r.Notes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return interviewFromRow(&r), nil
}

func (r *interviewRepo) collect(rows pgx.Rows) ([]domain.Interview, error) {
	defer rows.Close()
	var interviews []domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}

// ListByApplication retrieves all interview rounds for one application,
// earliest round date first
func (r *interviewRepo) ListByApplication(ctx context.Context, applicationID string) ([]domain.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE application_id = $1
		ORDER BY interview_date ASC`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListByUser retrieves every interview across all of a user's applications
func (r *interviewRepo) ListByUser(ctx context.Context, userID string) ([]domain.Interview, error) {
	query := `
		SELECT i.id, i.application_id, i.round_number, i.interview_date, i.interview_type,
			i.status, i.interviewer_name, i.interviewer_title, i.feedback, i.next_steps,
			i.notes, i.created_at, i.updated_at
		FROM interviews i
		JOIN applications a ON i.application_id = a.id
		WHERE a.user_id = $1
		ORDER BY i.interview_date ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	iv, err := scanInterview(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return iv, err
}

// Insert persists a new interview round. No round_number de-duplication is
// performed; two rounds with the same number are both kept.
func (r *interviewRepo) Insert(ctx context.Context, iv *domain.Interview) error {
	row := interviewToRow(iv)

	query := `
		INSERT INTO interviews (application_id, round_number, interview_date, interview_type,
			status, interviewer_name, interviewer_title, feedback, next_steps, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		row.ApplicationID,
		row.RoundNumber,
		row.InterviewDate,
		row.InterviewType,
		row.Status,
		row.InterviewerName,
		row.InterviewerTitle,
		row.Feedback,
		row.NextSteps,
		row.Notes,
	).Scan(&iv.ID, &iv.CreatedAt, &iv.UpdatedAt)
}

func (r *interviewRepo) Update(ctx context.Context, id string, patch domain.InterviewPatch) (*domain.Interview, error) {
	cols, vals := interviewPatchColumns(patch)

	set := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(vals)+2)
	for i, col := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, vals[i])
	}
	args = append(args, time.Now())
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id)

	query := `
		UPDATE interviews SET ` + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d", len(args)) + `
		RETURNING ` + interviewColumns

	iv, err := scanInterview(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return iv, err
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
