package chat

import (
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v3"
)

var (
	// ErrEmptyTurn rejects a submission with no text and no attachment.
	ErrEmptyTurn = errors.New("nothing to send")

	// ErrNoCredential means no API key is configured; the caller should
	// prompt the user to open settings rather than fail silently.
	ErrNoCredential = errors.New("no API key configured")

	// ErrTurnInFlight means a previous turn has not finished yet.
	ErrTurnInFlight = errors.New("a turn is already in flight")

	// ErrInvalidImageFormat means the stored attachment encoding does not
	// have the expected data:<mime>;base64,<payload> shape.
	ErrInvalidImageFormat = errors.New("invalid image format. Please try with a different image")

	// ErrEmptyResponse means the provider returned a success status with no
	// textual content.
	ErrEmptyResponse = errors.New("received empty response from the service")
)

// ProviderError carries the upstream status and message of a failed
// provider call.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("provider returned %d: %s", e.Status, e.Message)
	}
	return e.Message
}

// asProviderError normalizes transport and API errors into a ProviderError,
// pulling the structured message out of openai-go errors when present.
func asProviderError(err error, fallback string) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		msg := apierr.Message
		if msg == "" {
			msg = fallback
		}
		return &ProviderError{Status: apierr.StatusCode, Message: msg}
	}
	return &ProviderError{Message: err.Error()}
}

// errorMessage extracts the user-facing message from a turn failure.
func errorMessage(err error) string {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return err.Error()
}
