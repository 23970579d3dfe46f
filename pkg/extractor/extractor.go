package extractor

import (
	"context"
	"errors"
)

type Provider interface {
	Extract(ctx context.Context, locator string) (string, error)
}

// FallbackText stands in for OCR output when a job yields no usable text.
const FallbackText = "FAKE_TEXTRACT_TEXT"

var (
	ErrJobFailed = errors.New("extraction job failed")
	ErrTimeout   = errors.New("extraction timed out")
)

// StartError is returned when a job could not be submitted.
type StartError struct {
	Locator string

	Err error
}

func (e *StartError) Error() string {
	return "extraction start: " + e.Err.Error()
}

func (e *StartError) Unwrap() error {
	return e.Err
}

type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

type Job struct {
	ID     string
	Status Status

	// populated on success only
	Lines []string

	Message string
}

func (j *Job) Text() string {
	text := joinLines(j.Lines)

	if text == "" {
		return FallbackText
	}

	return text
}

func joinLines(lines []string) string {
	var result []byte

	for _, l := range lines {
		if l == "" {
			continue
		}

		if len(result) > 0 {
			result = append(result, '\n')
		}

		result = append(result, l...)
	}

	return string(result)
}
