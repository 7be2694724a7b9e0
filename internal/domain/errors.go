package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingGarment     = errors.New("a garment image is required")
	ErrMissingModel       = errors.New("a model reference image is required")
	ErrBackgroundConflict = errors.New("a background image and a background preset are mutually exclusive")
	ErrSessionBusy        = errors.New("a generation is already in flight for this session")
)

// NoSpecificReason is the floor explanation when the model returns neither an
// image nor any usable text.
const NoSpecificReason = "No specific reason provided"

// SafetyBlockedError reports a remote safety-policy refusal, carrying the
// blocked category labels when the response exposes them.
type SafetyBlockedError struct {
	Categories []string
}

func (e *SafetyBlockedError) Error() string {
	label := strings.Join(e.Categories, ", ")
	if label == "" {
		label = "unspecified category"
	}
	return "generation blocked by safety policy: " + label
}

// NoImageError reports a transport-level success that produced no image part,
// carrying the best-effort explanation extracted from the response text.
type NoImageError struct {
	Reason string
}

func (e *NoImageError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = NoSpecificReason
	}
	return "model returned no image: " + reason
}
