package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"flicks-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
		kind    apperrors.Kind
	}{
		{"validation", apperrors.ErrPhoneNotVerified, 400, "first verify phone number", apperrors.KindValidation},
		{"conflict", apperrors.ErrUsernameTaken, 409, "username already exists", apperrors.KindConflict},
		{"not found", apperrors.ErrFilmNotFound, 404, "film not found", apperrors.KindNotFound},
		{"unauthorized", apperrors.ErrWrongPassword, 401, "Wrong password!", apperrors.KindUnauthorized},
		{"throttled", apperrors.ErrOTPThrottled, 429, "Try getting otp after 1 min", apperrors.KindThrottled},
		{"invalid operation", apperrors.ErrCannotFollowSelf, 400, "You cant follow yourself", apperrors.KindInvalidOperation},
		{"mismatch", apperrors.ErrOTPMismatch, 400, "Entered code is wrong!", apperrors.KindMismatch},
		{"internal hides cause", apperrors.Internal("failed to load user", errors.New("dial tcp")), 500, "Internal server error", apperrors.KindInternal},
		{"plain error", errors.New("boom"), 500, "Internal server error", apperrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return AppErrorResponse(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var got StandardResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.message, got.Message)
			assert.Equal(t, tt.kind, got.Kind)
		})
	}
}

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(2, 20, 45)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)

	empty := CreatePaginationMeta(1, 20, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}
