package templates

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"resume-builder/internal/profiles"
)

//go:embed tex/*.tex
var texFS embed.FS

// ErrTemplateNotFound indicates the requested template ID is not in the catalog.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer turns a profile into TeX markup for a catalog template.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded TeX templates. TeX owns braces, so the
// templates use << >> as action delimiters.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("resume").
		Delims("<<", ">>").
		Funcs(template.FuncMap{"tex": EscapeTeX}).
		ParseFS(texFS, "tex/*.tex")
	if err != nil {
		return nil, fmt.Errorf("parse resume templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render produces TeX markup for the profile using the named template.
func (r *Renderer) Render(templateID string, p profiles.Profile) (string, error) {
	if !Exists(templateID) {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	var b strings.Builder
	if err := r.templates.ExecuteTemplate(&b, templateID+".tex", p); err != nil {
		return "", fmt.Errorf("render template %s: %w", templateID, err)
	}
	return b.String(), nil
}
