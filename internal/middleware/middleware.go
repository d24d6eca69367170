package middleware

import (
	"context"
	"strings"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/models"
	"flicks-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	userKey      = "user"
)

// Authenticator resolves an access token to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// RequestID reuses the caller's X-Request-ID or mints a new one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(requestIDKey, requestID)
		c.Set(RequestIDHeader, requestID)
		return c.Next()
	}
}

// Auth rejects requests without a valid bearer access token and stores the
// authenticated user for handlers.
func Auth(auth Authenticator, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return utils.AppErrorResponse(c, apperrors.Unauthorized("No token provided"))
		}

		user, err := auth.Authenticate(c.Context(), token)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindInternal {
				logger.WithError(err).WithField("request_id", GetRequestID(c)).Error("Failed to authenticate request")
			}
			return utils.AppErrorResponse(c, err)
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// CurrentUser returns the user stored by Auth, nil on public routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
