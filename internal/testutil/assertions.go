package testutil

import (
	"errors"
	"testing"

	apperrors "metalfolio/internal/errors"
)

// AssertAppError fails unless err is an *AppError carrying code.
func AssertAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", code)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Errorf("expected error code %q, got %q (message: %s)", code, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertWraps is AssertAppError that also requires cause in the chain, so a
// pricing failure can be traced through the AppError a service returns.
func AssertWraps(t *testing.T, err error, code string, cause error) {
	t.Helper()

	AssertAppError(t, err, code)
	if !errors.Is(err, cause) {
		t.Errorf("expected %v to wrap %v", err, cause)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
