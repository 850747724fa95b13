package jobads

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGCache implements Cache using Postgres.
type PGCache struct {
	DB *sql.DB
}

// Get returns the cached result for a key.
func (c *PGCache) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	const query = `SELECT result FROM jobad_parse_cache WHERE cache_key = $1`
	var raw []byte
	err := c.DB.QueryRowContext(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return json.RawMessage(raw), true, nil
}

// Put stores a result under a key. A concurrent writer with the same key wins
// on first insert; the stored value is identical either way.
func (c *PGCache) Put(ctx context.Context, key string, result json.RawMessage) error {
	const query = `
INSERT INTO jobad_parse_cache (cache_key, result, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (cache_key) DO NOTHING`
	_, err := c.DB.ExecContext(ctx, query, key, []byte(result), time.Now().UTC())
	return err
}

var _ Cache = (*PGCache)(nil)
