package jobads

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job ad.
func (r *PGRepo) Create(ctx context.Context, ad JobAd) error {
	const query = `
INSERT INTO job_ads (
    id,
    user_id,
    job_title,
    company_name,
    posted_at,
    location,
    description,
    requirements,
    raw_text,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	requirements, err := json.Marshal(emptyRequirements(ad.Requirements))
	if err != nil {
		return fmt.Errorf("marshal requirements: %w", err)
	}

	var location sql.NullString
	if ad.Location != "" {
		location = sql.NullString{String: ad.Location, Valid: true}
	}
	var rawText sql.NullString
	if ad.RawText != "" {
		rawText = sql.NullString{String: ad.RawText, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		ad.ID,
		ad.UserID,
		ad.JobTitle,
		ad.CompanyName,
		ad.PostedAt,
		location,
		ad.Description,
		requirements,
		rawText,
		ad.CreatedAt,
	)
	return err
}

// GetByID fetches a job ad by ID.
func (r *PGRepo) GetByID(ctx context.Context, jobAdID string) (JobAd, error) {
	const query = `
SELECT id, user_id, job_title, company_name, posted_at, location, description, requirements, raw_text, created_at
FROM job_ads
WHERE id = $1
LIMIT 1`
	ad, err := scanJobAd(r.DB.QueryRowContext(ctx, query, jobAdID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobAd{}, ErrNotFound
		}
		return JobAd{}, err
	}
	return ad, nil
}

// ListByUser lists job ads for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]JobAd, error) {
	const query = `
SELECT id, user_id, job_title, company_name, posted_at, location, description, requirements, raw_text, created_at
FROM job_ads
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobAd
	for rows.Next() {
		ad, err := scanJobAd(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ad)
	}
	return out, rows.Err()
}

// Delete removes a job ad owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, jobAdID string) error {
	const query = `DELETE FROM job_ads WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, jobAdID, userID)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobAd(row rowScanner) (JobAd, error) {
	var ad JobAd
	var location sql.NullString
	var rawText sql.NullString
	var requirements []byte
	if err := row.Scan(
		&ad.ID,
		&ad.UserID,
		&ad.JobTitle,
		&ad.CompanyName,
		&ad.PostedAt,
		&location,
		&ad.Description,
		&requirements,
		&rawText,
		&ad.CreatedAt,
	); err != nil {
		return JobAd{}, err
	}
	if location.Valid {
		ad.Location = location.String
	}
	if rawText.Valid {
		ad.RawText = rawText.String
	}
	if err := json.Unmarshal(requirements, &ad.Requirements); err != nil {
		return JobAd{}, fmt.Errorf("unmarshal requirements: %w", err)
	}
	return ad, nil
}

func emptyRequirements(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ Repo = (*PGRepo)(nil)
