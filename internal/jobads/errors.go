package jobads

import "errors"

var (
	// ErrNotFound indicates the job ad was not found.
	ErrNotFound = errors.New("job ad not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream indicates the model endpoint call failed.
	ErrUpstream = errors.New("failed to call model endpoint")

	// ErrInvalidModelOutput indicates no parseable JSON object was found in
	// the model response.
	ErrInvalidModelOutput = errors.New("model did not return valid JSON")
)

// ModelOutputError carries the raw model response for diagnosis.
type ModelOutputError struct {
	Raw string
}

func (e *ModelOutputError) Error() string {
	return ErrInvalidModelOutput.Error()
}

func (e *ModelOutputError) Unwrap() error {
	return ErrInvalidModelOutput
}
