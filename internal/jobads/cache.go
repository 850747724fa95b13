package jobads

import (
	"context"
	"encoding/json"
)

// Cache stores extraction results keyed by a content hash of the input text.
// Entries never expire.
type Cache interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Put(ctx context.Context, key string, result json.RawMessage) error
}
