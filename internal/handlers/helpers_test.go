package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"flicks-backend/internal/middleware"
	"flicks-backend/internal/models"
	"flicks-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var caller = &models.User{ID: 1, Username: "alice", Phone: "+989122222111"}

type callerAuth struct{}

func (callerAuth) Authenticate(context.Context, string) (*models.User, error) {
	return caller, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// authed wraps h with an Auth middleware that always resolves to caller.
func authed(h fiber.Handler) []fiber.Handler {
	return []fiber.Handler{middleware.Auth(callerAuth{}, quietLogger()), h}
}

func call(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, utils.StandardResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out utils.StandardResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func dataMap(t *testing.T, resp utils.StandardResponse) map[string]interface{} {
	t.Helper()
	m, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data is %T", resp.Data)
	return m
}

