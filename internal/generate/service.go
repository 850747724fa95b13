package generate

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/artifacts"
	"resume-builder/internal/convert"
	"resume-builder/internal/jobads"
	"resume-builder/internal/profiles"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
)

var (
	// ErrInvalidInput indicates a missing or malformed generation request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates the requested output format cannot be
	// generated directly.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Renderer turns a profile into TeX markup for a template.
type Renderer interface {
	Render(templateID string, p profiles.Profile) (string, error)
}

// Compiler turns TeX markup into PDF bytes.
type Compiler interface {
	Compile(ctx context.Context, markup string) ([]byte, error)
}

// Service runs the full generation pipeline: load, render, compile, persist.
type Service struct {
	Profiles  profiles.Repo
	JobAds    jobads.Repo
	Renderer  Renderer
	Compiler  Compiler
	Artifacts *artifacts.Service
}

// Request is one resume generation request.
type Request struct {
	ProfileID string
	JobAdID   string
	Template  string
	Format    string
}

// Result is a generated resume: the stored artifact plus its bytes.
type Result struct {
	Artifact artifacts.Artifact
	PDF      []byte
}

// Generate builds a resume PDF for a profile. The artifact is persisted
// before the result is returned; a compile failure persists nothing.
func (s *Service) Generate(ctx context.Context, userID string, req Request) (Result, error) {
	if req.ProfileID == "" {
		return Result{}, fmt.Errorf("%w: profileId is required", ErrInvalidInput)
	}
	if req.Template == "" {
		return Result{}, fmt.Errorf("%w: template is required", ErrInvalidInput)
	}
	if req.Format != "" && req.Format != convert.FormatPDF {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, req.Format)
	}

	profile, err := s.Profiles.GetByID(ctx, req.ProfileID)
	if err != nil {
		return Result{}, err
	}
	if profile.UserID != userID {
		return Result{}, profiles.ErrNotFound
	}

	// A failed job-ad lookup never fails the generation; the filename just
	// falls back to the resume suffix.
	var jobTitle string
	if req.JobAdID != "" {
		ad, err := s.JobAds.GetByID(ctx, req.JobAdID)
		switch {
		case err != nil:
			telemetry.Warn("generate.job_ad_lookup_failed", map[string]any{
				"job_ad_id": req.JobAdID,
				"error":     err.Error(),
			})
		case ad.UserID != userID:
			telemetry.Warn("generate.job_ad_lookup_failed", map[string]any{
				"job_ad_id": req.JobAdID,
				"error":     "not owned by requester",
			})
		default:
			jobTitle = ad.JobTitle
		}
	}

	markup, err := s.Renderer.Render(req.Template, profile)
	if err != nil {
		return Result{}, err
	}

	pdf, err := s.Compiler.Compile(ctx, markup)
	if err != nil {
		return Result{}, err
	}

	filename := deriveFilename(profile.Name, jobTitle)
	saved, err := s.Artifacts.SaveGenerated(ctx, artifacts.Artifact{
		ProfileID: req.ProfileID,
		JobAdID:   req.JobAdID,
		Template:  req.Template,
		Format:    convert.FormatPDF,
		Filename:  filename,
	}, pdf)
	if err != nil {
		return Result{}, err
	}

	telemetry.Info("generate.completed", map[string]any{
		"file_id":    saved.ID,
		"profile_id": req.ProfileID,
		"template":   req.Template,
		"size_bytes": saved.SizeBytes,
	})
	return Result{Artifact: saved, PDF: pdf}, nil
}

// deriveFilename builds a download name from the profile name and job title,
// with fixed fallbacks when either sanitizes to nothing.
func deriveFilename(name, jobTitle string) string {
	namePart := util.SanitizeNamePart(name)
	if namePart == "" {
		namePart = "profile"
	}
	titlePart := util.SanitizeNamePart(jobTitle)
	if titlePart == "" {
		titlePart = "resume"
	}
	return namePart + "_" + titlePart + ".pdf"
}
