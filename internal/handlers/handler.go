package handlers

import (
	"strconv"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/middleware"
	"flicks-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// bind parses the JSON body into req and validates it. On failure the error
// response is already written and ok is false.
func bind(c *fiber.Ctx, req interface{}) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return false, utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", fieldErrors(err))
	}
	return true, nil
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// fail renders err and logs it when it is not a domain error.
func fail(c *fiber.Ctx, logger *logrus.Logger, err error, msg string) error {
	if apperrors.KindOf(err) == apperrors.KindInternal {
		logger.WithError(err).WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"path":       c.Path(),
		}).Error(msg)
	}
	return utils.AppErrorResponse(c, err)
}

func paged(c *fiber.Ctx, message string, data interface{}, page, limit int, total int64) error {
	if limit > 100 {
		limit = 100
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, message, data, utils.CreatePaginationMeta(page, limit, total))
}
