package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/filmstate"
	"flicks-backend/internal/mocks"
	"flicks-backend/internal/models"
	"flicks-backend/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filmFixture struct {
	svc     services.FilmService
	films   *mocks.MockFilmRepository
	artists *mocks.MockArtistRepository
	marks   *mocks.MockFilmMarkRepository
	posts   *mocks.MockPostRepository
	users   *mocks.MockUserRepository
	catalog *mocks.MockCatalogClient
}

func newFilmFixture(t *testing.T) *filmFixture {
	ctrl := gomock.NewController(t)
	f := &filmFixture{
		films:   mocks.NewMockFilmRepository(ctrl),
		artists: mocks.NewMockArtistRepository(ctrl),
		marks:   mocks.NewMockFilmMarkRepository(ctrl),
		posts:   mocks.NewMockPostRepository(ctrl),
		users:   mocks.NewMockUserRepository(ctrl),
		catalog: mocks.NewMockCatalogClient(ctrl),
	}
	f.svc = services.NewFilmService(f.films, f.artists, f.marks, f.posts, f.users, f.catalog, fakeTx{}, quietLogger())
	return f
}

func TestFilmService_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - stored film is returned as is", func(t *testing.T) {
		f := newFilmFixture(t)
		stored := &models.Film{ID: 1, IMDBID: "tt1375666"}
		f.films.EXPECT().FindActiveByIMDBID(gomock.Any(), "tt1375666").Return(stored, nil)

		got, created, err := f.svc.Fetch(ctx, " tt1375666 ")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, stored, got)
	})

	t.Run("happy path - unknown film is imported with its artists", func(t *testing.T) {
		f := newFilmFixture(t)
		longName := strings.Repeat("é", 40)
		remote := &models.CatalogFilm{
			IMDBID:    "tt0816692",
			Name:      "Interstellar",
			Year:      2014,
			IMDB:      8.6,
			Directors: []models.CatalogArtist{{IMDBID: "nm0634240", Name: "Christopher Nolan"}},
			Actors:    []models.CatalogArtist{{IMDBID: "nm0000190", Name: longName}},
		}
		f.films.EXPECT().FindActiveByIMDBID(gomock.Any(), "tt0816692").Return(nil, nil)
		f.catalog.EXPECT().Fetch(gomock.Any(), "tt0816692").Return(remote, nil)
		f.artists.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Artist) (*models.Artist, error) {
				assert.LessOrEqual(t, len([]rune(a.Name)), 30)
				a.ID = 7
				return &a, nil
			}).Times(2)
		f.films.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, film *models.Film) error {
			assert.Len(t, film.Directors, 1)
			assert.Len(t, film.Actors, 1)
			assert.Empty(t, film.Writers)
			film.ID = 12
			return nil
		})

		got, created, err := f.svc.Fetch(ctx, "tt0816692")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, uint(12), got.ID)
		assert.Equal(t, "Interstellar", got.Name)
	})

	t.Run("sad path - catalog down", func(t *testing.T) {
		f := newFilmFixture(t)
		f.films.EXPECT().FindActiveByIMDBID(gomock.Any(), "tt1").Return(nil, nil)
		f.catalog.EXPECT().Fetch(gomock.Any(), "tt1").Return(nil, errors.New("boom"))

		_, _, err := f.svc.Fetch(ctx, "tt1")
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	})

	t.Run("sad path - empty id", func(t *testing.T) {
		f := newFilmFixture(t)
		_, _, err := f.svc.Fetch(ctx, "  ")
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestFilmService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("sad path - blank query", func(t *testing.T) {
		f := newFilmFixture(t)
		_, err := f.svc.Search(ctx, 1, " ")
		assert.ErrorIs(t, err, apperrors.ErrSearchParam)
	})

	t.Run("happy path - hits annotated with local state", func(t *testing.T) {
		f := newFilmFixture(t)
		f.catalog.EXPECT().Search(gomock.Any(), "inception").Return([]models.CatalogSearchResult{
			{IMDBID: "tt1375666", Name: "Inception"},
			{IMDBID: "tt9999999", Name: "Inception: The Cobol Job"},
		}, nil)
		f.films.EXPECT().FindActiveByIMDBIDs(gomock.Any(), []string{"tt1375666", "tt9999999"}).
			Return([]models.Film{{ID: 4, IMDBID: "tt1375666"}}, nil)
		f.marks.EXPECT().CountByFilms(gomock.Any(), []uint{4}, models.ListWatched).Return(map[uint]int64{4: 3}, nil)
		f.marks.EXPECT().States(gomock.Any(), uint(1), []uint{4}).
			Return(map[uint]filmstate.State{4: {models.ListWatched: true}}, nil)

		got, err := f.svc.Search(ctx, 1, "inception")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(3), got[0].WatchedCount)
		assert.True(t, got[0].IsWatched)
		assert.False(t, got[0].IsWatchlist)
		assert.Zero(t, got[1].WatchedCount)
		assert.False(t, got[1].IsWatched)
	})
}

func TestFilmService_ApplyAction(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - remove from watched drops the post", func(t *testing.T) {
		f := newFilmFixture(t)
		transition, _ := filmstate.For(filmstate.RemoveFromWatched)
		f.films.EXPECT().FindActiveByID(gomock.Any(), uint(4)).Return(&models.Film{ID: 4}, nil)
		f.marks.EXPECT().State(gomock.Any(), uint(1), uint(4)).
			Return(filmstate.State{models.ListWatched: true, models.ListFavorite: true}, nil)
		f.marks.EXPECT().Apply(gomock.Any(), uint(1), uint(4), transition).Return(nil)
		f.posts.EXPECT().DeactivateByUserAndFilm(gomock.Any(), uint(1), uint(4)).Return(nil)

		state, err := f.svc.ApplyAction(ctx, 1, 4, filmstate.RemoveFromWatched)
		require.NoError(t, err)
		assert.Empty(t, state)
	})

	t.Run("happy path - favorite from watchlist", func(t *testing.T) {
		f := newFilmFixture(t)
		transition, _ := filmstate.For(filmstate.AddToFavorite)
		f.films.EXPECT().FindActiveByID(gomock.Any(), uint(4)).Return(&models.Film{ID: 4}, nil)
		f.marks.EXPECT().State(gomock.Any(), uint(1), uint(4)).
			Return(filmstate.State{models.ListWatchlist: true}, nil)
		f.marks.EXPECT().Apply(gomock.Any(), uint(1), uint(4), transition).Return(nil)

		state, err := f.svc.ApplyAction(ctx, 1, 4, filmstate.AddToFavorite)
		require.NoError(t, err)
		assert.Equal(t, filmstate.State{models.ListWatched: true, models.ListFavorite: true}, state)
	})

	t.Run("sad path - unknown film", func(t *testing.T) {
		f := newFilmFixture(t)
		f.films.EXPECT().FindActiveByID(gomock.Any(), uint(99)).Return(nil, nil)

		_, err := f.svc.ApplyAction(ctx, 1, 99, filmstate.AddToWatched)
		assert.ErrorIs(t, err, apperrors.ErrFilmNotFound)
	})

	t.Run("sad path - unknown action", func(t *testing.T) {
		f := newFilmFixture(t)
		_, err := f.svc.ApplyAction(ctx, 1, 4, filmstate.Action("rewatch"))
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("sad path - list write fails", func(t *testing.T) {
		f := newFilmFixture(t)
		f.films.EXPECT().FindActiveByID(gomock.Any(), uint(4)).Return(&models.Film{ID: 4}, nil)
		f.marks.EXPECT().State(gomock.Any(), uint(1), uint(4)).Return(filmstate.State{}, nil)
		f.marks.EXPECT().Apply(gomock.Any(), uint(1), uint(4), gomock.Any()).Return(errors.New("db down"))

		_, err := f.svc.ApplyAction(ctx, 1, 4, filmstate.AddToWatchlist)
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	})
}

func TestFilmService_Detail(t *testing.T) {
	f := newFilmFixture(t)
	f.films.EXPECT().FindActiveByID(gomock.Any(), uint(4)).Return(&models.Film{ID: 4, Name: "Inception"}, nil)
	f.posts.EXPECT().ActiveByFilm(gomock.Any(), uint(4)).Return([]models.Post{
		{Genres: map[string]int{"action": 8, "drama": 0}, Rate: floatPtr(9)},
		{Genres: map[string]int{"action": 6, "scifi": 10}, Rate: floatPtr(7)},
		{Genres: map[string]int{"drama": 0}},
	}, nil)
	f.marks.EXPECT().CountByFilm(gomock.Any(), uint(4), models.ListWatched).Return(int64(3), nil)
	f.marks.EXPECT().CountByFilm(gomock.Any(), uint(4), models.ListWatchlist).Return(int64(2), nil)
	f.marks.EXPECT().CountByFilm(gomock.Any(), uint(4), models.ListFavorite).Return(int64(1), nil)

	detail, err := f.svc.Detail(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Inception", detail.Name)
	assert.InDelta(t, 8.0, detail.RateAverage, 1e-9)
	assert.Equal(t, map[string]float64{"action": 7, "scifi": 10}, detail.GenresAverage)
	assert.Equal(t, int64(3), detail.WatchedCount)
	assert.Equal(t, int64(2), detail.WatchlistCount)
	assert.Equal(t, int64(1), detail.FavedCount)
}

func TestFilmService_ListMarked(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - search ignored outside watched", func(t *testing.T) {
		f := newFilmFixture(t)
		f.users.EXPECT().FindActiveByID(gomock.Any(), uint(2)).Return(&models.User{ID: 2}, nil)
		f.marks.EXPECT().ListFilms(gomock.Any(), uint(2), models.ListFavorite, "", 1, 20).
			Return([]models.Film{{ID: 4, Name: "Inception"}}, int64(1), nil)
		f.marks.EXPECT().States(gomock.Any(), uint(1), []uint{4}).
			Return(map[uint]filmstate.State{4: {models.ListWatchlist: true}}, nil)

		items, total, err := f.svc.ListMarked(ctx, 1, 2, models.ListFavorite, "inc", 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.True(t, items[0].IsWatchlist)
	})

	t.Run("sad path - unknown list", func(t *testing.T) {
		f := newFilmFixture(t)
		_, _, err := f.svc.ListMarked(ctx, 1, 1, models.FilmList("seen"), "", 1, 20)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}
