package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Structured sections are stored as
// JSONB so list order round-trips exactly as submitted.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new profile.
func (r *PGRepo) Create(ctx context.Context, p Profile) error {
	const query = `
INSERT INTO profiles (
    id,
    user_id,
    name,
    job_title,
    contact_info,
    career_objective,
    skills,
    job_history,
    education,
    internships,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	cols, err := marshalSections(p)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		p.ID,
		p.UserID,
		p.Name,
		p.JobTitle,
		cols.contactInfo,
		p.CareerObjective,
		cols.skills,
		cols.jobHistory,
		cols.education,
		cols.internships,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// GetByID fetches a profile by ID.
func (r *PGRepo) GetByID(ctx context.Context, profileID string) (Profile, error) {
	const query = `
SELECT id, user_id, name, job_title, contact_info, career_objective, skills, job_history, education, internships, created_at, updated_at
FROM profiles
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, profileID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

// ListByUser lists profiles owned by a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Profile, error) {
	const query = `
SELECT id, user_id, name, job_title, contact_info, career_objective, skills, job_history, education, internships, created_at, updated_at
FROM profiles
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update replaces the stored profile, scoped to the owning user.
func (r *PGRepo) Update(ctx context.Context, p Profile) error {
	const query = `
UPDATE profiles
SET name = $1,
    job_title = $2,
    contact_info = $3,
    career_objective = $4,
    skills = $5,
    job_history = $6,
    education = $7,
    internships = $8,
    updated_at = $9
WHERE id = $10 AND user_id = $11`

	cols, err := marshalSections(p)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		p.Name,
		p.JobTitle,
		cols.contactInfo,
		p.CareerObjective,
		cols.skills,
		cols.jobHistory,
		cols.education,
		cols.internships,
		p.UpdatedAt,
		p.ID,
		p.UserID,
	)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a profile owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, profileID string) error {
	const query = `DELETE FROM profiles WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, profileID, userID)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

type sectionColumns struct {
	contactInfo []byte
	skills      []byte
	jobHistory  []byte
	education   []byte
	internships []byte
}

func marshalSections(p Profile) (sectionColumns, error) {
	var cols sectionColumns
	var err error
	if cols.contactInfo, err = json.Marshal(p.ContactInfo); err != nil {
		return cols, fmt.Errorf("marshal contact info: %w", err)
	}
	if cols.skills, err = json.Marshal(emptySlice(p.Skills)); err != nil {
		return cols, fmt.Errorf("marshal skills: %w", err)
	}
	if cols.jobHistory, err = json.Marshal(emptyEntries(p.JobHistory)); err != nil {
		return cols, fmt.Errorf("marshal job history: %w", err)
	}
	if cols.education, err = json.Marshal(emptyEducation(p.Education)); err != nil {
		return cols, fmt.Errorf("marshal education: %w", err)
	}
	if cols.internships, err = json.Marshal(emptyEntries(p.Internships)); err != nil {
		return cols, fmt.Errorf("marshal internships: %w", err)
	}
	return cols, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var p Profile
	var contactInfo, skills, jobHistory, education, internships []byte
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.JobTitle,
		&contactInfo,
		&p.CareerObjective,
		&skills,
		&jobHistory,
		&education,
		&internships,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return Profile{}, err
	}
	if err := json.Unmarshal(contactInfo, &p.ContactInfo); err != nil {
		return Profile{}, fmt.Errorf("unmarshal contact info: %w", err)
	}
	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return Profile{}, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(jobHistory, &p.JobHistory); err != nil {
		return Profile{}, fmt.Errorf("unmarshal job history: %w", err)
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return Profile{}, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(internships, &p.Internships); err != nil {
		return Profile{}, fmt.Errorf("unmarshal internships: %w", err)
	}
	return p, nil
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyEntries(s []JobEntry) []JobEntry {
	if s == nil {
		return []JobEntry{}
	}
	return s
}

func emptyEducation(s []EducationEntry) []EducationEntry {
	if s == nil {
		return []EducationEntry{}
	}
	return s
}

var _ Repo = (*PGRepo)(nil)
