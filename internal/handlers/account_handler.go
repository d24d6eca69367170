package handlers

import (
	"context"

	"flicks-backend/internal/middleware"
	"flicks-backend/internal/models"
	"flicks-backend/internal/services"
	"flicks-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AccountHandler serves the follow graph and profiles. Every list route is
// mounted twice: under /accounts/profile for the caller and under
// /accounts/:id/profile for another user.
type AccountHandler struct {
	follows  services.FollowService
	profiles services.ProfileService
	films    services.FilmService
	posts    services.PostService
	logger   *logrus.Logger
}

func NewAccountHandler(
	follows services.FollowService,
	profiles services.ProfileService,
	films services.FilmService,
	posts services.PostService,
	logger *logrus.Logger,
) *AccountHandler {
	return &AccountHandler{
		follows:  follows,
		profiles: profiles,
		films:    films,
		posts:    posts,
		logger:   logger,
	}
}

// subject is the user a profile route is about: :id when present, else the caller.
func subject(c *fiber.Ctx) (uint, bool) {
	if c.Params("id") == "" {
		return middleware.CurrentUser(c).ID, true
	}
	return paramID(c, "id")
}

// Follow godoc
// @Summary Follow a user
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse "Self follow"
// @Failure 404 {object} utils.StandardResponse
// @Router /accounts/{id}/follow [post]
func (h *AccountHandler) Follow(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	if err := h.follows.Follow(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return fail(c, h.logger, err, "Failed to follow user")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "User followed", nil)
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /accounts/{id}/unfollow [post]
func (h *AccountHandler) Unfollow(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	if err := h.follows.Unfollow(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return fail(c, h.logger, err, "Failed to unfollow user")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "User unfollowed", nil)
}

// RemoveFollower godoc
// @Summary Remove a follower
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Follower ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /accounts/{id}/remove_follower [post]
func (h *AccountHandler) RemoveFollower(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	if err := h.follows.RemoveFollower(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return fail(c, h.logger, err, "Failed to remove follower")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Follower removed", nil)
}

// Profile godoc
// @Summary Get a profile
// @Description Own profile, or another user's with is_followed
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID"
// @Success 200 {object} utils.StandardResponse{data=models.ProfileDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /accounts/profile [get]
// @Router /accounts/{id}/profile [get]
func (h *AccountHandler) Profile(c *fiber.Ctx) error {
	id, ok := subject(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	viewer := middleware.CurrentUser(c)
	var detail *models.ProfileDetail
	var err error
	if id == viewer.ID {
		detail, err = h.profiles.Get(c.Context(), viewer)
	} else {
		detail, err = h.profiles.Other(c.Context(), viewer, id)
	}
	if err != nil {
		return fail(c, h.logger, err, "Failed to load profile")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Profile retrieved successfully", detail)
}

// EditProfile godoc
// @Summary Edit own profile
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EditProfileRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.ProfileDetail}
// @Failure 409 {object} utils.StandardResponse "Username taken"
// @Router /accounts/profile/edit [put]
func (h *AccountHandler) EditProfile(c *fiber.Ctx) error {
	var req EditProfileRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	detail, err := h.profiles.Edit(c.Context(), middleware.CurrentUser(c), req.toInput())
	if err != nil {
		return fail(c, h.logger, err, "Failed to edit profile")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Profile updated successfully", detail)
}

// DeleteProfile godoc
// @Summary Delete own account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse
// @Router /accounts/profile/delete [delete]
func (h *AccountHandler) DeleteProfile(c *fiber.Ctx) error {
	if err := h.profiles.Delete(c.Context(), middleware.CurrentUser(c)); err != nil {
		return fail(c, h.logger, err, "Failed to delete profile")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Profile deleted successfully", nil)
}

// Followers godoc
// @Summary List followers
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID"
// @Param search query string false "Search username or name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.UserSummary}
// @Router /accounts/profile/followers_list [get]
// @Router /accounts/{id}/profile/followers_list [get]
func (h *AccountHandler) Followers(c *fiber.Ctx) error {
	return h.edges(c, h.follows.Followers, "Followers retrieved successfully")
}

// Followings godoc
// @Summary List followings
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID"
// @Param search query string false "Search username or name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.UserSummary}
// @Router /accounts/profile/following_list [get]
// @Router /accounts/{id}/profile/following_list [get]
func (h *AccountHandler) Followings(c *fiber.Ctx) error {
	return h.edges(c, h.follows.Followings, "Followings retrieved successfully")
}

type edgeList func(ctx context.Context, viewerID, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error)

func (h *AccountHandler) edges(c *fiber.Ctx, list edgeList, message string) error {
	id, ok := subject(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	page, limit := pagination(c)

	rows, total, err := list(c.Context(), middleware.CurrentUser(c).ID, id, c.Query("search"), page, limit)
	if err != nil {
		return fail(c, h.logger, err, "Failed to list users")
	}
	return paged(c, message, rows, page, limit, total)
}

// Posts godoc
// @Summary List a user's posts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.Post}
// @Router /accounts/profile/posts [get]
// @Router /accounts/{id}/profile/posts [get]
func (h *AccountHandler) Posts(c *fiber.Ctx) error {
	id, ok := subject(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	page, limit := pagination(c)

	posts, total, err := h.posts.ListByUser(c.Context(), middleware.CurrentUser(c).ID, id, page, limit)
	if err != nil {
		return fail(c, h.logger, err, "Failed to list posts")
	}
	return paged(c, "Posts retrieved successfully", posts, page, limit, total)
}

// Watchlist godoc
// @Summary List a user's watchlist
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.FilmListItem}
// @Router /accounts/profile/watchlist [get]
// @Router /accounts/{id}/profile/watchlist [get]
func (h *AccountHandler) Watchlist(c *fiber.Ctx) error {
	return h.marked(c, models.ListWatchlist)
}

// Watched godoc
// @Summary List a user's watched films
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID"
// @Param search query string false "Search film name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.FilmListItem}
// @Router /accounts/profile/watched [get]
// @Router /accounts/{id}/profile/watched [get]
func (h *AccountHandler) Watched(c *fiber.Ctx) error {
	return h.marked(c, models.ListWatched)
}

// Favorites godoc
// @Summary List a user's favorite films
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int false "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.FilmListItem}
// @Router /accounts/profile/fav [get]
// @Router /accounts/{id}/profile/fav [get]
func (h *AccountHandler) Favorites(c *fiber.Ctx) error {
	return h.marked(c, models.ListFavorite)
}

func (h *AccountHandler) marked(c *fiber.Ctx, list models.FilmList) error {
	id, ok := subject(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	page, limit := pagination(c)

	films, total, err := h.films.ListMarked(c.Context(), middleware.CurrentUser(c).ID, id, list, c.Query("search"), page, limit)
	if err != nil {
		return fail(c, h.logger, err, "Failed to list films")
	}
	return paged(c, "Films retrieved successfully", films, page, limit, total)
}

// Search godoc
// @Summary Search users
// @Description Active users other than the caller, newest first
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param search query string false "Username or name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.UserSummary}
// @Router /accounts/search [get]
func (h *AccountHandler) Search(c *fiber.Ctx) error {
	page, limit := pagination(c)

	rows, total, err := h.profiles.Search(c.Context(), middleware.CurrentUser(c), c.Query("search"), page, limit)
	if err != nil {
		return fail(c, h.logger, err, "Failed to search users")
	}
	return paged(c, "Users retrieved successfully", rows, page, limit, total)
}
