package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("create folder: %w", &ValidationError{Message: "folder name too long"})

	if !errors.Is(err, ErrValidation) {
		t.Error("expected errors.Is(err, ErrValidation)")
	}

	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatal("expected ValidationError to implement HTTPError")
	}
	if httpErr.StatusCode() != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", httpErr.StatusCode())
	}
	if httpErr.Error() != "folder name too long" {
		t.Errorf("message = %q", httpErr.Error())
	}
}

func TestSearchError_MasksCauseMessage(t *testing.T) {
	cause := fmt.Errorf("search folders: %w: %w", ErrStorage, errors.New("connection reset by peer"))
	err := &SearchError{Err: cause}

	if err.Error() != "failed to search folders" {
		t.Errorf("Error() = %q, want generic message", err.Error())
	}
	if !errors.Is(err, ErrSearchFailed) {
		t.Error("expected errors.Is(err, ErrSearchFailed)")
	}
	if !errors.Is(err, ErrStorage) {
		t.Error("cause should remain reachable through Unwrap")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("search failure must not match ErrValidation")
	}
}
