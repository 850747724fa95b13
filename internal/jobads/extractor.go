package jobads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
)

const extractSystemPrompt = `You are an expert recruiter assistant. Given the full text of a job posting, extract and return EXACTLY the following JSON shape, with no extra keys or commentary:

{
  "jobTitle": string,
  "companyName": string,
  "postedAt": string,
  "location": string,
  "description": string,
  "requirements": string[]
}`

// Service contains business logic for job-ad extraction, persistence and advice.
type Service struct {
	Repo  Repo
	Cache Cache
	LLM   llm.Client
}

// Parse runs one extraction: cache lookup by content hash, model call on a
// miss, brace-substring JSON parse, write-through to the cache. The returned
// bytes are the stored result verbatim on a hit.
func (s *Service) Parse(ctx context.Context, url, rawText string) (json.RawMessage, error) {
	textSource := textSourceFor(url, rawText)
	if textSource == "" {
		return nil, fmt.Errorf("%w: must provide url or rawText", ErrInvalidInput)
	}

	key := util.HashContentKey(textSource)
	if cached, ok, err := s.Cache.Get(ctx, key); err == nil && ok {
		return cached, nil
	} else if err != nil {
		telemetry.Warn("jobads.cache_lookup_failed", map[string]any{"error": err.Error()})
	}

	content, err := s.LLM.Complete(ctx, []llm.Message{
		{Role: "system", Content: extractSystemPrompt},
		{Role: "user", Content: textSource},
	})
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	raw, err := ExtractJSONObject(content)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Put(ctx, key, raw); err != nil {
		telemetry.Warn("jobads.cache_write_failed", map[string]any{"error": err.Error()})
	}
	return raw, nil
}

// Save persists a parsed job ad for the user and returns the stored record.
func (s *Service) Save(ctx context.Context, userID string, parsed ParsedJob, rawText string) (JobAd, error) {
	if userID == "" {
		return JobAd{}, ErrInvalidInput
	}
	ad := JobAd{
		ID:           uuid.NewString(),
		UserID:       userID,
		JobTitle:     parsed.JobTitle,
		CompanyName:  parsed.CompanyName,
		PostedAt:     parsed.PostedAt,
		Location:     parsed.Location,
		Description:  parsed.Description,
		Requirements: parsed.Requirements,
		RawText:      rawText,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, ad); err != nil {
		return JobAd{}, err
	}
	return ad, nil
}

// Get returns a job ad owned by the user.
func (s *Service) Get(ctx context.Context, userID, jobAdID string) (JobAd, error) {
	ad, err := s.Repo.GetByID(ctx, jobAdID)
	if err != nil {
		return JobAd{}, err
	}
	if ad.UserID != userID {
		return JobAd{}, ErrNotFound
	}
	return ad, nil
}

// List returns all job ads owned by the user.
func (s *Service) List(ctx context.Context, userID string) ([]JobAd, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes a job ad owned by the user.
func (s *Service) Delete(ctx context.Context, userID, jobAdID string) error {
	return s.Repo.Delete(ctx, userID, jobAdID)
}

// ExtractJSONObject takes the substring from the first '{' to the last '}'
// of a model response and verifies it parses as a JSON object.
func ExtractJSONObject(content string) (json.RawMessage, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &ModelOutputError{Raw: content}
	}
	candidate := content[start : end+1]

	var probe map[string]any
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return nil, &ModelOutputError{Raw: candidate}
	}
	return json.RawMessage(candidate), nil
}

// textSourceFor returns the text handed to the model. A url-only request
// yields a fixed placeholder; no page fetch happens at this layer.
func textSourceFor(url, rawText string) string {
	if rawText != "" {
		return rawText
	}
	if url != "" {
		return fmt.Sprintf("FETCHED CONTENT FROM: %s\n\n---\nPlease parse this HTML/text.", url)
	}
	return ""
}
