package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"stayhub/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("invalid date range"),
			code:    http.StatusBadRequest,
			message: "invalid date range",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing token"),
			code:    http.StatusUnauthorized,
			message: "missing token",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("not the booking guest"),
			code:    http.StatusForbidden,
			message: "not the booking guest",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("review already exists"),
			code:    http.StatusConflict,
			message: "review already exists",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}

			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, failure.GetCode(tt.err))
			}
		})
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	err := fmt.Errorf("failed to cancel booking: %w", failure.Forbidden("not the booking guest"))

	if failure.GetCode(err) != http.StatusForbidden {
		t.Errorf("expected wrapped failure to keep its code, got %d", failure.GetCode(err))
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if failure.GetCode(errors.New("plain")) != http.StatusInternalServerError {
		t.Error("expected plain errors to map to internal server error")
	}
}

func TestIs(t *testing.T) {
	err := failure.NotFound("property not found")

	if !failure.Is(err, http.StatusNotFound) {
		t.Error("expected Is to match the failure code")
	}

	if failure.Is(err, http.StatusForbidden) {
		t.Error("expected Is to reject a different code")
	}
}
