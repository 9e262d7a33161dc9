package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adokuru/affordaily-api/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	err := failure.Conflict("No available rooms found")

	assert.Equal(t, "No available rooms found", err.Error())
}

func TestFailure_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "bad request", err: failure.BadRequestFromString("number of nights must be at least 1"), code: http.StatusBadRequest},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("Guest is blacklisted"), code: http.StatusConflict},
		{name: "invalid state", err: failure.InvalidState("Only active bookings can be extended"), code: http.StatusUnprocessableEntity},
		{name: "unauthorized", err: failure.Unauthorized("missing token"), code: http.StatusUnauthorized},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "forbidden", err: failure.Forbidden("nope"), code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}

func TestGetCode_WrappedAndUnknown(t *testing.T) {
	wrapped := fmt.Errorf("checkout: %w", failure.NotFound("booking not found"))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
}

func TestBadRequest_NilPassthrough(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
