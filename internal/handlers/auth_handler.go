package handlers

import (
	"flicks-backend/internal/middleware"
	"flicks-backend/internal/services"
	"flicks-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// SendOTP godoc
// @Summary Send registration OTP
// @Description Send a one-time code to a phone that is not registered yet
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PhoneRequest true "Phone number"
// @Success 201 {object} utils.StandardResponse{data=OTPResponse}
// @Failure 400 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse "Phone already registered"
// @Failure 429 {object} utils.StandardResponse "Code already sent"
// @Router /auth/send_otp [post]
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req PhoneRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	record, err := h.service.SendRegistrationOTP(c.Context(), req.Phone)
	if err != nil {
		return fail(c, h.logger, err, "Failed to send otp")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "OTP sent", OTPResponse{ID: record.ID, Phone: record.Phone})
}

// VerifyOTP godoc
// @Summary Verify OTP
// @Description Check the code sent for an OTP record and mark the phone verified
// @Tags auth
// @Accept json
// @Produce json
// @Param id path int true "OTP record ID"
// @Param request body VerifyOTPRequest true "Code"
// @Success 200 {object} utils.StandardResponse{data=OTPResponse}
// @Failure 400 {object} utils.StandardResponse "Wrong code"
// @Failure 404 {object} utils.StandardResponse "Code expired or record missing"
// @Router /auth/{id}/verify [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid otp ID")
	}
	var req VerifyOTPRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	record, err := h.service.VerifyOTP(c.Context(), id, req.OTP)
	if err != nil {
		return fail(c, h.logger, err, "Failed to verify otp")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Phone number verified", OTPResponse{ID: record.ID, Phone: record.Phone})
}

// Register godoc
// @Summary Register
// @Description Create an account for a verified phone and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account"
// @Success 201 {object} utils.StandardResponse{data=services.TokenPair}
// @Failure 400 {object} utils.StandardResponse "Phone not verified"
// @Failure 409 {object} utils.StandardResponse "Phone or username taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	pair, err := h.service.Register(c.Context(), req.Phone, req.Username, req.Password)
	if err != nil {
		return fail(c, h.logger, err, "Failed to register user")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", pair)
}

// Login godoc
// @Summary Login
// @Description Login with username or phone
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse{data=services.TokenPair}
// @Failure 401 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	pair, err := h.service.Login(c.Context(), req.PhoneUsername, req.Password)
	if err != nil {
		return fail(c, h.logger, err, "Failed to login")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in successfully", pair)
}

// CheckUsername godoc
// @Summary Check username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UsernameRequest true "Username"
// @Success 200 {object} utils.StandardResponse{data=UsernameAvailability}
// @Router /auth/check_username [post]
func (h *AuthHandler) CheckUsername(c *fiber.Ctx) error {
	var req UsernameRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	available, err := h.service.CheckUsernameAvailable(c.Context(), req.Username)
	if err != nil {
		return fail(c, h.logger, err, "Failed to check username")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Username checked", UsernameAvailability{
		Username:  req.Username,
		Available: available,
	})
}

// ForgetPasswordOTP godoc
// @Summary Send password reset OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PhoneRequest true "Phone number"
// @Success 200 {object} utils.StandardResponse{data=OTPResponse}
// @Failure 404 {object} utils.StandardResponse
// @Failure 429 {object} utils.StandardResponse
// @Router /auth/forget_password_otp [post]
func (h *AuthHandler) ForgetPasswordOTP(c *fiber.Ctx) error {
	var req PhoneRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	record, err := h.service.ForgotPasswordRequest(c.Context(), req.Phone)
	if err != nil {
		return fail(c, h.logger, err, "Failed to send password otp")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OTP sent", OTPResponse{ID: record.ID, Phone: record.Phone})
}

// ForgetPasswordChange godoc
// @Summary Reset password
// @Description Set a new password once the OTP record's phone is verified
// @Tags auth
// @Accept json
// @Produce json
// @Param id path int true "OTP record ID"
// @Param request body PasswordRequest true "New password"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /auth/{id}/forget_password_change [post]
func (h *AuthHandler) ForgetPasswordChange(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid otp ID")
	}
	var req PasswordRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	if err := h.service.ForgotPasswordConfirm(c.Context(), id, req.Password); err != nil {
		return fail(c, h.logger, err, "Failed to reset password")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Password changed successfully", nil)
}

// ChangePassword godoc
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse "Wrong password"
// @Router /auth/change_password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	user := middleware.CurrentUser(c)
	if err := h.service.ChangePassword(c.Context(), user, req.OldPassword, req.Password); err != nil {
		return fail(c, h.logger, err, "Failed to change password")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Password changed successfully", nil)
}

// Refresh godoc
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} utils.StandardResponse{data=services.TokenPair}
// @Failure 401 {object} utils.StandardResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	pair, err := h.service.Refresh(c.Context(), req.Refresh)
	if err != nil {
		return fail(c, h.logger, err, "Failed to refresh token")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Token refreshed", pair)
}
