package handlers

import (
	"flicks-backend/internal/filmstate"
	"flicks-backend/internal/middleware"
	"flicks-backend/internal/services"
	"flicks-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FilmHandler struct {
	films  services.FilmService
	posts  services.PostService
	logger *logrus.Logger
}

func NewFilmHandler(films services.FilmService, posts services.PostService, logger *logrus.Logger) *FilmHandler {
	return &FilmHandler{
		films:  films,
		posts:  posts,
		logger: logger,
	}
}

var markActions = map[string]map[string]filmstate.Action{
	"watchlist": {"add": filmstate.AddToWatchlist, "remove": filmstate.RemoveFromWatchlist},
	"watched":   {"add": filmstate.AddToWatched, "remove": filmstate.RemoveFromWatched},
	"fav":       {"add": filmstate.AddToFavorite, "remove": filmstate.RemoveFromFavorite},
}

// Mark godoc
// @Summary Add a film to or remove it from a list
// @Description Adding to watchlist clears watched and fav. Adding to fav also marks watched.
// @Description Removing from watched also clears fav and deletes the caller's post for the film.
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param list path string true "watchlist, watched or fav"
// @Param id path int true "Film ID"
// @Param op path string true "add or remove"
// @Success 200 {object} utils.StandardResponse{data=FilmListsResponse}
// @Failure 404 {object} utils.StandardResponse
// @Router /films/{list}/{id}/{op} [post]
func (h *FilmHandler) Mark(c *fiber.Ctx) error {
	action, ok := markActions[c.Params("list")][c.Params("op")]
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Unknown film action")
	}
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	state, err := h.films.ApplyAction(c.Context(), middleware.CurrentUser(c).ID, id, action)
	if err != nil {
		return fail(c, h.logger, err, "Failed to update film lists")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Film lists updated", newFilmListsResponse(id, state))
}

// Search godoc
// @Summary Search the film catalog
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param search query string true "Film name"
// @Success 200 {object} utils.StandardResponse{data=[]models.CatalogSearchResult}
// @Failure 400 {object} utils.StandardResponse "Missing search param"
// @Router /films/search [get]
func (h *FilmHandler) Search(c *fiber.Ctx) error {
	results, err := h.films.Search(c.Context(), middleware.CurrentUser(c).ID, c.Query("search"))
	if err != nil {
		return fail(c, h.logger, err, "Failed to search films")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Films retrieved successfully", results)
}

// List godoc
// @Summary List stored films
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param sort_by query string false "Sort by field (imdb, fav, watched, post, created_at)" default(created_at)
// @Param order query string false "Sort order (ASC/DESC)" default(DESC)
// @Success 200 {object} utils.StandardResponse{data=[]models.FilmListItem}
// @Router /films [get]
func (h *FilmHandler) List(c *fiber.Ctx) error {
	page, limit := pagination(c)
	sortBy := c.Query("sort_by", "created_at")
	order := c.Query("order", "DESC")

	films, total, err := h.films.List(c.Context(), middleware.CurrentUser(c).ID, page, limit, sortBy, order)
	if err != nil {
		return fail(c, h.logger, err, "Failed to list films")
	}
	return paged(c, "Films retrieved successfully", films, page, limit, total)
}

// Fetch godoc
// @Summary Import a film from the catalog
// @Description Returns the stored film when it already exists
// @Tags films
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FetchFilmRequest true "IMDB id"
// @Success 200 {object} utils.StandardResponse{data=FetchFilmResponse} "Already stored"
// @Success 201 {object} utils.StandardResponse{data=FetchFilmResponse} "Imported"
// @Failure 500 {object} utils.StandardResponse
// @Router /films [post]
func (h *FilmHandler) Fetch(c *fiber.Ctx) error {
	var req FetchFilmRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	film, created, err := h.films.Fetch(c.Context(), req.IMDBID)
	if err != nil {
		return fail(c, h.logger, err, "Failed to fetch film")
	}

	code, message := fiber.StatusOK, "Film already exists"
	if created {
		code, message = fiber.StatusCreated, "Film created successfully"
	}
	return utils.SuccessResponse(c, code, message, FetchFilmResponse{Created: created, Film: film})
}

// Detail godoc
// @Summary Get film detail
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param id path int true "Film ID"
// @Success 200 {object} utils.StandardResponse{data=models.FilmDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /films/{id} [get]
func (h *FilmHandler) Detail(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	detail, err := h.films.Detail(c.Context(), id)
	if err != nil {
		return fail(c, h.logger, err, "Failed to get film")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Film retrieved successfully", detail)
}

// Posts godoc
// @Summary List a film's posts
// @Description Captioned posts of the caller's followings come first
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param id path int true "Film ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.Post}
// @Failure 404 {object} utils.StandardResponse
// @Router /films/{id}/posts [get]
func (h *FilmHandler) Posts(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}
	page, limit := pagination(c)

	posts, total, err := h.posts.ListByFilm(c.Context(), middleware.CurrentUser(c).ID, id, page, limit)
	if err != nil {
		return fail(c, h.logger, err, "Failed to list film posts")
	}
	return paged(c, "Posts retrieved successfully", posts, page, limit, total)
}
