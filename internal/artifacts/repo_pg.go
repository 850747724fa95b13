package artifacts

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new artifact record.
func (r *PGRepo) Create(ctx context.Context, a Artifact) error {
	const query = `
INSERT INTO artifacts (
    id,
    profile_id,
    job_ad_id,
    template,
    format,
    filename,
    storage_key,
    size_bytes,
    is_generated,
    sort_order,
    upload_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var jobAdID sql.NullString
	if a.JobAdID != "" {
		jobAdID = sql.NullString{String: a.JobAdID, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		a.ID,
		a.ProfileID,
		jobAdID,
		a.Template,
		a.Format,
		a.Filename,
		a.StorageKey,
		a.SizeBytes,
		a.IsGenerated,
		a.SortOrder,
		a.UploadDate,
	)
	return err
}

// GetByID fetches an artifact by ID.
func (r *PGRepo) GetByID(ctx context.Context, fileID string) (Artifact, error) {
	const query = `
SELECT id, profile_id, job_ad_id, template, format, filename, storage_key, size_bytes, is_generated, sort_order, upload_date
FROM artifacts
WHERE id = $1
LIMIT 1`

	var a Artifact
	var jobAdID sql.NullString
	err := r.DB.QueryRowContext(ctx, query, fileID).Scan(
		&a.ID,
		&a.ProfileID,
		&jobAdID,
		&a.Template,
		&a.Format,
		&a.Filename,
		&a.StorageKey,
		&a.SizeBytes,
		&a.IsGenerated,
		&a.SortOrder,
		&a.UploadDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artifact{}, ErrNotFound
		}
		return Artifact{}, err
	}
	if jobAdID.Valid {
		a.JobAdID = jobAdID.String
	}
	return a, nil
}

// ListByProfile returns artifacts for a profile with display names joined
// in, ordered by sort order then newest first.
func (r *PGRepo) ListByProfile(ctx context.Context, profileID string) ([]ListItem, error) {
	const query = `
SELECT a.id, a.profile_id, a.job_ad_id, a.template, a.format, a.filename, a.storage_key,
       a.size_bytes, a.is_generated, a.sort_order, a.upload_date,
       p.name, j.job_title
FROM artifacts a
LEFT JOIN profiles p ON p.id = a.profile_id
LEFT JOIN job_ads j ON j.id = a.job_ad_id
WHERE a.profile_id = $1
ORDER BY a.sort_order ASC, a.upload_date DESC`

	rows, err := r.DB.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListItem
	for rows.Next() {
		var item ListItem
		var jobAdID, profileName, jobAdTitle sql.NullString
		if err := rows.Scan(
			&item.ID,
			&item.ProfileID,
			&jobAdID,
			&item.Template,
			&item.Format,
			&item.Filename,
			&item.StorageKey,
			&item.SizeBytes,
			&item.IsGenerated,
			&item.SortOrder,
			&item.UploadDate,
			&profileName,
			&jobAdTitle,
		); err != nil {
			return nil, err
		}
		if jobAdID.Valid {
			item.JobAdID = jobAdID.String
		}
		if profileName.Valid {
			name := profileName.String
			item.ProfileName = &name
		}
		if jobAdTitle.Valid {
			title := jobAdTitle.String
			item.JobAdTitle = &title
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Rename updates an artifact's filename.
func (r *PGRepo) Rename(ctx context.Context, fileID, filename string) error {
	const query = `UPDATE artifacts SET filename = $1 WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, filename, fileID)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateSortOrder updates an artifact's position in its profile's list.
func (r *PGRepo) UpdateSortOrder(ctx context.Context, fileID string, sortOrder int) error {
	const query = `UPDATE artifacts SET sort_order = $1 WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, sortOrder, fileID)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an artifact record.
func (r *PGRepo) Delete(ctx context.Context, fileID string) error {
	const query = `DELETE FROM artifacts WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, fileID)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
