package handlers

import (
	"testing"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/mocks"
	"flicks-backend/internal/models"
	"flicks-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newAuthApp(t *testing.T) (*fiber.App, *mocks.MockAuthService) {
	svc := mocks.NewMockAuthService(gomock.NewController(t))
	h := NewAuthHandler(svc, quietLogger())

	app := fiber.New()
	app.Post("/auth/send_otp", h.SendOTP)
	app.Post("/auth/:id/verify", h.VerifyOTP)
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/check_username", h.CheckUsername)
	app.Post("/auth/:id/forget_password_change", h.ForgetPasswordChange)
	app.Post("/auth/change_password", authed(h.ChangePassword)...)
	return app, svc
}

func TestAuthHandler_SendOTP(t *testing.T) {
	t.Run("happy path - created", func(t *testing.T) {
		app, svc := newAuthApp(t)
		svc.EXPECT().SendRegistrationOTP(gomock.Any(), "+989122222111").
			Return(&models.PhoneOTP{ID: 7, Phone: "+989122222111"}, nil)

		code, resp := call(t, app, "POST", "/auth/send_otp", PhoneRequest{Phone: "+989122222111"})
		assert.Equal(t, fiber.StatusCreated, code)
		assert.Equal(t, float64(7), dataMap(t, resp)["id"])
	})

	t.Run("sad path - malformed phone", func(t *testing.T) {
		app, _ := newAuthApp(t)

		code, resp := call(t, app, "POST", "/auth/send_otp", PhoneRequest{Phone: "0912"})
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "e164", dataMap(t, resp)["phone"])
	})

	t.Run("sad path - throttled", func(t *testing.T) {
		app, svc := newAuthApp(t)
		svc.EXPECT().SendRegistrationOTP(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrOTPThrottled)

		code, resp := call(t, app, "POST", "/auth/send_otp", PhoneRequest{Phone: "+989122222111"})
		assert.Equal(t, fiber.StatusTooManyRequests, code)
		assert.Equal(t, apperrors.KindThrottled, resp.Kind)
		assert.Equal(t, "Try getting otp after 1 min", resp.Message)
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	t.Run("sad path - wrong code", func(t *testing.T) {
		app, svc := newAuthApp(t)
		svc.EXPECT().VerifyOTP(gomock.Any(), uint(7), "11111").Return(nil, apperrors.ErrOTPMismatch)

		code, resp := call(t, app, "POST", "/auth/7/verify", VerifyOTPRequest{OTP: "11111"})
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, apperrors.KindMismatch, resp.Kind)
	})

	t.Run("sad path - bad id", func(t *testing.T) {
		app, _ := newAuthApp(t)
		code, _ := call(t, app, "POST", "/auth/abc/verify", VerifyOTPRequest{OTP: "11111"})
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	req := RegisterRequest{Phone: "+989122222111", Username: "alice", Password: "secret123"}

	t.Run("happy path - token pair", func(t *testing.T) {
		app, svc := newAuthApp(t)
		svc.EXPECT().Register(gomock.Any(), req.Phone, req.Username, req.Password).
			Return(&services.TokenPair{Access: "a", Refresh: "r"}, nil)

		code, resp := call(t, app, "POST", "/auth/register", req)
		assert.Equal(t, fiber.StatusCreated, code)
		assert.Equal(t, "a", dataMap(t, resp)["access"])
		assert.Equal(t, "r", dataMap(t, resp)["refresh"])
	})

	t.Run("sad path - username taken", func(t *testing.T) {
		app, svc := newAuthApp(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUsernameTaken)

		code, resp := call(t, app, "POST", "/auth/register", req)
		assert.Equal(t, fiber.StatusConflict, code)
		assert.Equal(t, "username already exists", resp.Message)
	})

	t.Run("sad path - short password", func(t *testing.T) {
		app, _ := newAuthApp(t)
		bad := req
		bad.Password = "123"

		code, resp := call(t, app, "POST", "/auth/register", bad)
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "min", dataMap(t, resp)["password"])
	})
}

func TestAuthHandler_Login(t *testing.T) {
	app, svc := newAuthApp(t)
	svc.EXPECT().Login(gomock.Any(), "alice", "nope").Return(nil, apperrors.ErrBadCredentials)

	code, resp := call(t, app, "POST", "/auth/login", LoginRequest{PhoneUsername: "alice", Password: "nope"})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "Username or password is wrong!", resp.Message)
}

func TestAuthHandler_CheckUsername(t *testing.T) {
	app, svc := newAuthApp(t)
	svc.EXPECT().CheckUsernameAvailable(gomock.Any(), "bob").Return(true, nil)

	code, resp := call(t, app, "POST", "/auth/check_username", UsernameRequest{Username: "bob"})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, dataMap(t, resp)["available"])
}

func TestAuthHandler_Passwords(t *testing.T) {
	t.Run("sad path - reset before verification", func(t *testing.T) {
		app, svc := newAuthApp(t)
		svc.EXPECT().ForgotPasswordConfirm(gomock.Any(), uint(7), "newsecret123").Return(apperrors.ErrVerifyPhoneFirst)

		code, resp := call(t, app, "POST", "/auth/7/forget_password_change", PasswordRequest{Password: "newsecret123"})
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "First verify your phone number", resp.Message)
	})

	t.Run("happy path - change password as the caller", func(t *testing.T) {
		app, svc := newAuthApp(t)
		svc.EXPECT().ChangePassword(gomock.Any(), caller, "secret123", "newsecret123").Return(nil)

		code, _ := call(t, app, "POST", "/auth/change_password", ChangePasswordRequest{OldPassword: "secret123", Password: "newsecret123"})
		assert.Equal(t, fiber.StatusOK, code)
	})
}
