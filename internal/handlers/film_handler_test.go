package handlers

import (
	"testing"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/filmstate"
	"flicks-backend/internal/mocks"
	"flicks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newFilmApp(t *testing.T) (*fiber.App, *mocks.MockFilmService, *mocks.MockPostService) {
	ctrl := gomock.NewController(t)
	films := mocks.NewMockFilmService(ctrl)
	posts := mocks.NewMockPostService(ctrl)
	h := NewFilmHandler(films, posts, quietLogger())

	app := fiber.New()
	app.Get("/films/search", authed(h.Search)...)
	app.Get("/films", authed(h.List)...)
	app.Post("/films", authed(h.Fetch)...)
	app.Get("/films/:id", authed(h.Detail)...)
	app.Get("/films/:id/posts", authed(h.Posts)...)
	app.Post("/films/:list/:id/:op", authed(h.Mark)...)
	return app, films, posts
}

func TestFilmHandler_Mark(t *testing.T) {
	tests := []struct {
		path   string
		action filmstate.Action
	}{
		{"/films/watchlist/4/add", filmstate.AddToWatchlist},
		{"/films/watchlist/4/remove", filmstate.RemoveFromWatchlist},
		{"/films/watched/4/add", filmstate.AddToWatched},
		{"/films/watched/4/remove", filmstate.RemoveFromWatched},
		{"/films/fav/4/add", filmstate.AddToFavorite},
		{"/films/fav/4/remove", filmstate.RemoveFromFavorite},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			app, films, _ := newFilmApp(t)
			films.EXPECT().ApplyAction(gomock.Any(), uint(1), uint(4), tt.action).Return(filmstate.State{}, nil)

			code, _ := call(t, app, "POST", tt.path, nil)
			assert.Equal(t, fiber.StatusOK, code)
		})
	}

	t.Run("happy path - response lists the film's lists", func(t *testing.T) {
		app, films, _ := newFilmApp(t)
		films.EXPECT().ApplyAction(gomock.Any(), uint(1), uint(4), filmstate.AddToFavorite).
			Return(filmstate.State{models.ListWatched: true, models.ListFavorite: true}, nil)

		code, resp := call(t, app, "POST", "/films/fav/4/add", nil)
		assert.Equal(t, fiber.StatusOK, code)
		data := dataMap(t, resp)
		assert.Equal(t, float64(4), data["film_id"])
		assert.Equal(t, true, data["watched"])
		assert.Equal(t, true, data["fav"])
		assert.Equal(t, false, data["watchlist"])
	})

	t.Run("sad path - unknown list", func(t *testing.T) {
		app, _, _ := newFilmApp(t)
		code, _ := call(t, app, "POST", "/films/seen/4/add", nil)
		assert.Equal(t, fiber.StatusNotFound, code)
	})

	t.Run("sad path - missing film", func(t *testing.T) {
		app, films, _ := newFilmApp(t)
		films.EXPECT().ApplyAction(gomock.Any(), uint(1), uint(99), filmstate.AddToWatched).Return(filmstate.State{}, apperrors.ErrFilmNotFound)

		code, resp := call(t, app, "POST", "/films/watched/99/add", nil)
		assert.Equal(t, fiber.StatusNotFound, code)
		assert.Equal(t, apperrors.KindNotFound, resp.Kind)
	})
}

func TestFilmHandler_Fetch(t *testing.T) {
	t.Run("happy path - imported", func(t *testing.T) {
		app, films, _ := newFilmApp(t)
		films.EXPECT().Fetch(gomock.Any(), "tt1375666").Return(&models.Film{ID: 4, Name: "Inception"}, true, nil)

		code, resp := call(t, app, "POST", "/films", FetchFilmRequest{IMDBID: "tt1375666"})
		assert.Equal(t, fiber.StatusCreated, code)
		assert.Equal(t, true, dataMap(t, resp)["created"])
	})

	t.Run("happy path - already stored", func(t *testing.T) {
		app, films, _ := newFilmApp(t)
		films.EXPECT().Fetch(gomock.Any(), "tt1375666").Return(&models.Film{ID: 4}, false, nil)

		code, _ := call(t, app, "POST", "/films", FetchFilmRequest{IMDBID: "tt1375666"})
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("sad path - missing imdb id", func(t *testing.T) {
		app, _, _ := newFilmApp(t)
		code, _ := call(t, app, "POST", "/films", FetchFilmRequest{})
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestFilmHandler_Read(t *testing.T) {
	t.Run("sad path - search without query", func(t *testing.T) {
		app, films, _ := newFilmApp(t)
		films.EXPECT().Search(gomock.Any(), uint(1), "").Return(nil, apperrors.ErrSearchParam)

		code, resp := call(t, app, "GET", "/films/search", nil)
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "Specify search param", resp.Message)
	})

	t.Run("happy path - list sorted by imdb", func(t *testing.T) {
		app, films, _ := newFilmApp(t)
		films.EXPECT().List(gomock.Any(), uint(1), 1, 20, "imdb", "ASC").Return([]models.FilmListItem{{ID: 4}}, int64(1), nil)

		code, _ := call(t, app, "GET", "/films?sort_by=imdb&order=ASC", nil)
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("happy path - detail", func(t *testing.T) {
		app, films, _ := newFilmApp(t)
		films.EXPECT().Detail(gomock.Any(), uint(4)).Return(&models.FilmDetail{
			Film:        models.Film{ID: 4, Name: "Inception"},
			RateAverage: 8,
		}, nil)

		code, resp := call(t, app, "GET", "/films/4", nil)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "Inception", dataMap(t, resp)["name"])
		assert.Equal(t, float64(8), dataMap(t, resp)["rate_average"])
	})

	t.Run("happy path - film posts for the caller", func(t *testing.T) {
		app, _, posts := newFilmApp(t)
		posts.EXPECT().ListByFilm(gomock.Any(), uint(1), uint(4), 1, 20).Return([]models.Post{{ID: 3}}, int64(1), nil)

		code, _ := call(t, app, "GET", "/films/4/posts", nil)
		assert.Equal(t, fiber.StatusOK, code)
	})
}
