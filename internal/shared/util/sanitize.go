package util

import (
	"errors"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// SanitizeNamePart collapses any run of characters outside [a-zA-Z0-9-_]
// into a single underscore and trims leading/trailing underscores. Used to
// build download file names from free-form profile and job titles.
func SanitizeNamePart(s string) string {
	out := unsafeFilenameChars.ReplaceAllString(s, "_")
	return strings.Trim(out, "_")
}
