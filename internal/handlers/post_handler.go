package handlers

import (
	"flicks-backend/internal/middleware"
	"flicks-backend/internal/services"
	"flicks-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PostHandler struct {
	service services.PostService
	logger  *logrus.Logger
}

func NewPostHandler(service services.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{
		service: service,
		logger:  logger,
	}
}

// Feed godoc
// @Summary Feed
// @Description Active posts of the caller's followings, newest first
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.Post}
// @Router /posts [get]
func (h *PostHandler) Feed(c *fiber.Ctx) error {
	page, limit := pagination(c)

	posts, total, err := h.service.Feed(c.Context(), middleware.CurrentUser(c).ID, page, limit)
	if err != nil {
		return fail(c, h.logger, err, "Failed to load feed")
	}
	return paged(c, "Posts retrieved successfully", posts, page, limit, total)
}

// Create godoc
// @Summary Write a post
// @Description One post per film. The film is marked watched.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PostRequest true "Post"
// @Success 201 {object} utils.StandardResponse{data=models.Post}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Film not found"
// @Failure 409 {object} utils.StandardResponse "Post already exists"
// @Router /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req PostRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	post, err := h.service.Create(c.Context(), middleware.CurrentUser(c), req.toInput())
	if err != nil {
		return fail(c, h.logger, err, "Failed to create post")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Post created successfully", post)
}

// Get godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} utils.StandardResponse{data=models.Post}
// @Failure 404 {object} utils.StandardResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.service.Get(c.Context(), id)
	if err != nil {
		return fail(c, h.logger, err, "Failed to get post")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Post retrieved successfully", post)
}

// Update godoc
// @Summary Edit own post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body PostUpdateRequest true "Post"
// @Success 200 {object} utils.StandardResponse{data=models.Post}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /posts/{id} [put]
// @Router /posts/{id} [patch]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid post ID")
	}
	var req PostUpdateRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	post, err := h.service.Update(c.Context(), middleware.CurrentUser(c), id, req.toInput())
	if err != nil {
		return fail(c, h.logger, err, "Failed to update post")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Post updated successfully", post)
}

// Delete godoc
// @Summary Delete own post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	if err := h.service.Delete(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return fail(c, h.logger, err, "Failed to delete post")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Post deleted successfully", nil)
}
