package handlers

import (
	"flicks-backend/internal/middleware"
	"flicks-backend/internal/services"
	"flicks-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	profiles services.ProfileService
	logger   *logrus.Logger
}

func NewUploadHandler(profiles services.ProfileService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// PresignProfileMedia godoc
// @Summary Get presigned URL for a profile photo or banner
// @Description Generate a presigned PUT URL on MinIO/S3 and store the public URL on the caller's profile
// @Tags Upload
// @Produce json
// @Security BearerAuth
// @Param kind query string true "photo or banner"
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse{data=services.PresignedMedia}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /accounts/profile/media/presign [get]
func (h *UploadHandler) PresignProfileMedia(c *fiber.Ctx) error {
	kind := services.MediaKind(c.Query("kind", string(services.MediaPhoto)))
	filename := c.Query("filename")

	media, err := h.profiles.PresignMedia(c.Context(), middleware.CurrentUser(c), kind, filename)
	if err != nil {
		return fail(c, h.logger, err, "Failed to generate presigned URL")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", media)
}
