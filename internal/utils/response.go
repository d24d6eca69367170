package utils

import (
	"errors"

	"flicks-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// StandardResponse represents the standard API response format
type StandardResponse struct {
	Status  string         `json:"status"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Kind    apperrors.Kind `json:"kind,omitempty"`
	Data    interface{}    `json:"data,omitempty"`
	Meta    interface{}    `json:"meta,omitempty"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// SuccessWithMetaResponse sends a success response with pagination meta
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  errorStatus(code),
		Code:    code,
		Message: message,
	})
}

// ErrorWithDataResponse sends an error response with additional data
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  errorStatus(code),
		Code:    code,
		Message: message,
		Kind:    apperrors.KindValidation,
		Data:    data,
	})
}

// AppErrorResponse renders err with the status of its kind. Internal errors
// never leak their cause to the client.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	kind := apperrors.KindOf(err)
	code := StatusFor(kind)

	message := "Internal server error"
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && kind != apperrors.KindInternal {
		message = appErr.Message
	}

	return c.Status(code).JSON(StandardResponse{
		Status:  errorStatus(code),
		Code:    code,
		Message: message,
		Kind:    kind,
	})
}

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindValidation:       fiber.StatusBadRequest,
	apperrors.KindConflict:         fiber.StatusConflict,
	apperrors.KindNotFound:         fiber.StatusNotFound,
	apperrors.KindUnauthorized:     fiber.StatusUnauthorized,
	apperrors.KindThrottled:        fiber.StatusTooManyRequests,
	apperrors.KindInvalidOperation: fiber.StatusBadRequest,
	apperrors.KindMismatch:         fiber.StatusBadRequest,
	apperrors.KindInternal:         fiber.StatusInternalServerError,
}

func StatusFor(kind apperrors.Kind) int {
	if code, ok := kindStatus[kind]; ok {
		return code
	}
	return fiber.StatusInternalServerError
}

func errorStatus(code int) string {
	if code >= 500 {
		return "fail"
	}
	return "error"
}

// CreatePaginationMeta creates pagination metadata
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	if limit < 1 {
		limit = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
