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

const applicationColumns = `id, user_id, company_name, position_title, application_date,
		application_source, status, job_description, location, job_type, work_mode,
		salary_range, next_step, next_step_date, notes, created_at, updated_at`

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var r applicationRow
	err := row.Scan(
		&r.ID, &r.UserID, &r.CompanyName, &r.PositionTitle, &r.ApplicationDate,
		&r.ApplicationSource, &r.Status, &r.JobDescription, &r.Location, &r.JobType,
		&r.WorkMode, &r.SalaryRange, &r.NextStep, &r.NextStepDate, &r.Notes,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return applicationFromRow(&r)
}

// ListByUser retrieves all applications owned by a user, newest first
func (r *applicationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

// GetByID retrieves a single application
func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return app, err
}

// Insert persists a new application. The store assigns id and timestamps,
// which are written back into app before returning.
func (r *applicationRepo) Insert(ctx context.Context, app *domain.Application) error {
	row, err := applicationToRow(app)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO applications (user_id, company_name, position_title, application_date,
			application_source, status, job_description, location, job_type, work_mode,
			salary_range, next_step, next_step_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		row.UserID,
		row.CompanyName,
		row.PositionTitle,
		row.ApplicationDate,
		row.ApplicationSource,
		row.Status,
		row.JobDescription,
		row.Location,
		row.JobType,
		row.WorkMode,
		jsonbParam(row.SalaryRange),
		row.NextStep,
		row.NextStepDate,
		row.Notes,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

// Update applies the non-nil patch fields by id and returns the stored record.
// updated_at always advances, even for an effectively empty change.
func (r *applicationRepo) Update(ctx context.Context, id string, patch domain.ApplicationPatch) (*domain.Application, error) {
	cols, vals, err := applicationPatchColumns(patch)
	if err != nil {
		return nil, err
	}

	set := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(vals)+2)
	for i, col := range cols {
		if col == "salary_range" {
			set = append(set, fmt.Sprintf("%s = $%d::jsonb", col, i+1))
			args = append(args, jsonbParam(vals[i].([]byte)))
			continue
		}
		set = append(set, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, vals[i])
	}
	args = append(args, time.Now())
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id)

	query := `
		UPDATE applications SET ` + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d", len(args)) + `
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return app, err
}

// Delete removes an application by id. Interviews and referrals cascade at
// the store via their foreign keys.
func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// jsonbParam passes jsonb as text so the simple protocol (PgBouncer mode)
// does not mistake the bytes for bytea.
func jsonbParam(b []byte) *string {
	if b == nil {
		return nil
	}
	s := string(b)
	return &s
}
