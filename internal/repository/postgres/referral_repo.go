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

const referralColumns = `id, application_id, referrer_name, referrer_email, referrer_phone,
		relationship, notes, created_at, updated_at`

type referralRepo struct {
	db *pgxpool.Pool
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *pgxpool.Pool) domain.ReferralRepository {
	return &referralRepo{db: db}
}

func scanReferral(row pgx.Row) (*domain.Referral, error) {
	var r referralRow
	err := row.Scan(
		&r.ID, &r.ApplicationID, &r.ReferrerName, &r.ReferrerEmail, &r.ReferrerPhone,
		&r.Relationship, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return referralFromRow(&r), nil
}

func (r *referralRepo) collect(rows pgx.Rows) ([]domain.Referral, error) {
	defer rows.Close()
	var referrals []domain.Referral
	for rows.Next() {
		ref, err := scanReferral(rows)
		if err != nil {
			return nil, err
		}
		referrals = append(referrals, *ref)
	}
	return referrals, rows.Err()
}

func (r *referralRepo) ListByApplication(ctx context.Context, applicationID string) ([]domain.Referral, error) {
	query := `
		SELECT ` + referralColumns + `
		FROM referrals
		WHERE application_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *referralRepo) ListByUser(ctx context.Context, userID string) ([]domain.Referral, error) {
	query := `
		SELECT f.id, f.application_id, f.referrer_name, f.referrer_email, f.referrer_phone,
			f.relationship, f.notes, f.created_at, f.updated_at
		FROM referrals f
		JOIN applications a ON f.application_id = a.id
		WHERE a.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *referralRepo) GetByID(ctx context.Context, id string) (*domain.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE id = $1`

	ref, err := scanReferral(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return ref, err
}

func (r *referralRepo) Insert(ctx context.Context, ref *domain.Referral) error {
	row := referralToRow(ref)

	query := `
		INSERT INTO referrals (application_id, referrer_name, referrer_email, referrer_phone,
			relationship, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		row.ApplicationID,
		row.ReferrerName,
		row.ReferrerEmail,
		row.ReferrerPhone,
		row.Relationship,
		row.Notes,
	).Scan(&ref.ID, &ref.CreatedAt, &ref.UpdatedAt)
}

func (r *referralRepo) Update(ctx context.Context, id string, patch domain.ReferralPatch) (*domain.Referral, error) {
	cols, vals := referralPatchColumns(patch)

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
		UPDATE referrals SET ` + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d", len(args)) + `
		RETURNING ` + referralColumns

	ref, err := scanReferral(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return ref, err
}

func (r *referralRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM referrals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
