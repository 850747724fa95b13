package jobads

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/telemetry"
)

// AdviceFallback is returned whenever the model call fails. Advice never
// hard-fails on upstream trouble.
const AdviceFallback = "Unable to generate advice at this time."

// Advice composes a career-coach prompt from the profile and job ad and
// returns the model's text verbatim. No caching, no retries.
func (s *Service) Advice(ctx context.Context, profile, jobAd json.RawMessage) string {
	var b strings.Builder
	b.WriteString("You are a career coach. Analyze the following resume/profile and job posting, and give actionable, concise advice to improve the resume for this job.\n\n")
	if len(profile) > 0 {
		b.WriteString("\nPROFILE:\n")
		b.Write(indentJSON(profile))
	}
	if len(jobAd) > 0 {
		b.WriteString("\n\nJOB POST:\n")
		b.Write(indentJSON(jobAd))
	}
	b.WriteString("\n\nAdvice:")

	text, err := s.LLM.Complete(ctx, []llm.Message{
		{Role: "system", Content: b.String()},
	})
	if err != nil {
		telemetry.Warn("jobads.advice_failed", map[string]any{"error": err.Error()})
		return AdviceFallback
	}
	if text == "" {
		return "No advice generated."
	}
	return text
}

func indentJSON(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return raw
	}
	return buf.Bytes()
}
