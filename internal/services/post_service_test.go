package services_test

import (
	"context"
	"testing"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/mocks"
	"flicks-backend/internal/models"
	"flicks-backend/internal/repository"
	"flicks-backend/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (services.PostService, *mocks.MockPostRepository, *mocks.MockFilmService) {
	svc, posts, _, films := newPostFixtureWithUsers(t)
	return svc, posts, films
}

func newPostFixtureWithUsers(t *testing.T) (services.PostService, *mocks.MockPostRepository, *mocks.MockUserRepository, *mocks.MockFilmService) {
	ctrl := gomock.NewController(t)
	posts := mocks.NewMockPostRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)
	films := mocks.NewMockFilmService(ctrl)
	return services.NewPostService(posts, users, films, fakeTx{}, quietLogger()), posts, users, films
}

func TestValidateGenres(t *testing.T) {
	tests := []struct {
		name    string
		genres  map[string]int
		message string
	}{
		{name: "empty", genres: nil, message: "Invalid genre"},
		{name: "unknown key", genres: map[string]int{"action": 3, "cooking": 2}, message: "No genre called cooking"},
		{name: "above range", genres: map[string]int{"drama": 11}, message: "Invalid value for drama"},
		{name: "below range", genres: map[string]int{"drama": -1}, message: "Invalid value for drama"},
		{name: "first bad key wins in key order", genres: map[string]int{"zzz": 1, "aaa": 1}, message: "No genre called aaa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateGenres(tt.genres)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}

	assert.NoError(t, services.ValidateGenres(map[string]int{"action": 0, "scifi": 10}))
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 1}
	input := services.PostInput{FilmID: 4, Genres: map[string]int{"action": 8}, Rate: floatPtr(8.5), Caption: strPtr("great")}

	t.Run("happy path - post created and film marked watched", func(t *testing.T) {
		svc, posts, films := newPostFixture(t)
		films.EXPECT().Get(gomock.Any(), uint(4)).Return(&models.Film{ID: 4}, nil)
		posts.EXPECT().FindActiveByUserAndFilm(gomock.Any(), uint(1), uint(4)).Return(nil, nil)
		posts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Post) error {
			p.ID = 10
			return nil
		})
		films.EXPECT().AddToWatched(gomock.Any(), uint(1), uint(4)).Return(nil)

		post, err := svc.Create(ctx, user, input)
		require.NoError(t, err)
		assert.Equal(t, uint(10), post.ID)
		assert.True(t, post.IsActive)
		assert.Equal(t, "great", *post.Caption)
	})

	t.Run("sad path - rate out of range", func(t *testing.T) {
		svc, _, _ := newPostFixture(t)
		in := input
		in.Rate = floatPtr(10.5)

		_, err := svc.Create(ctx, user, in)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
	})

	t.Run("sad path - film missing", func(t *testing.T) {
		svc, _, films := newPostFixture(t)
		films.EXPECT().Get(gomock.Any(), uint(4)).Return(nil, apperrors.ErrFilmNotFound)

		_, err := svc.Create(ctx, user, input)
		assert.ErrorIs(t, err, apperrors.ErrFilmNotFound)
	})

	t.Run("sad path - second post for the same film", func(t *testing.T) {
		svc, posts, films := newPostFixture(t)
		films.EXPECT().Get(gomock.Any(), uint(4)).Return(&models.Film{ID: 4}, nil)
		posts.EXPECT().FindActiveByUserAndFilm(gomock.Any(), uint(1), uint(4)).Return(&models.Post{ID: 3}, nil)

		_, err := svc.Create(ctx, user, input)
		assert.ErrorIs(t, err, apperrors.ErrPostExists)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})

	t.Run("sad path - concurrent create hits the unique index", func(t *testing.T) {
		svc, posts, films := newPostFixture(t)
		films.EXPECT().Get(gomock.Any(), uint(4)).Return(&models.Film{ID: 4}, nil)
		posts.EXPECT().FindActiveByUserAndFilm(gomock.Any(), uint(1), uint(4)).Return(nil, nil)
		posts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.Wrap(repository.ErrDuplicate, "postRepo.Create"))

		_, err := svc.Create(ctx, user, input)
		assert.ErrorIs(t, err, apperrors.ErrPostExists)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})
}

func TestPostService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 1}
	input := services.PostInput{Genres: map[string]int{"drama": 5}, Quote: strPtr("We used to look up")}

	t.Run("happy path - owner edits", func(t *testing.T) {
		svc, posts, _ := newPostFixture(t)
		posts.EXPECT().FindActiveByID(gomock.Any(), uint(10)).Return(&models.Post{ID: 10, UserID: 1, FilmID: 4}, nil)
		posts.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		post, err := svc.Update(ctx, user, 10, input)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"drama": 5}, post.Genres)
		assert.Equal(t, uint(4), post.FilmID)
		assert.Nil(t, post.Rate)
	})

	t.Run("happy path - caption only edit keeps the rest", func(t *testing.T) {
		svc, posts, _ := newPostFixture(t)
		stored := &models.Post{ID: 10, UserID: 1, FilmID: 4, Genres: map[string]int{"drama": 7}, Rate: floatPtr(7)}
		posts.EXPECT().FindActiveByID(gomock.Any(), uint(10)).Return(stored, nil)
		posts.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		post, err := svc.Update(ctx, user, 10, services.PostInput{Caption: strPtr("new caption")})
		require.NoError(t, err)
		assert.Equal(t, "new caption", *post.Caption)
		assert.Equal(t, map[string]int{"drama": 7}, post.Genres)
		require.NotNil(t, post.Rate)
		assert.Equal(t, 7.0, *post.Rate)
	})

	t.Run("happy path - genres only edit keeps caption and rate", func(t *testing.T) {
		svc, posts, _ := newPostFixture(t)
		stored := &models.Post{ID: 10, UserID: 1, FilmID: 4, Genres: map[string]int{"drama": 7}, Rate: floatPtr(7), Caption: strPtr("keep me")}
		posts.EXPECT().FindActiveByID(gomock.Any(), uint(10)).Return(stored, nil)
		posts.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		post, err := svc.Update(ctx, user, 10, services.PostInput{Genres: map[string]int{"drama": 6}})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"drama": 6}, post.Genres)
		require.NotNil(t, post.Caption)
		assert.Equal(t, "keep me", *post.Caption)
		require.NotNil(t, post.Rate)
		assert.Equal(t, 7.0, *post.Rate)
	})

	t.Run("sad path - empty genres on edit", func(t *testing.T) {
		svc, _, _ := newPostFixture(t)

		_, err := svc.Update(ctx, user, 10, services.PostInput{Genres: map[string]int{}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidGenre)
	})

	t.Run("sad path - someone else's post looks missing", func(t *testing.T) {
		svc, posts, _ := newPostFixture(t)
		posts.EXPECT().FindActiveByID(gomock.Any(), uint(10)).Return(&models.Post{ID: 10, UserID: 2}, nil).Times(2)

		_, err := svc.Update(ctx, user, 10, input)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, user, 10), apperrors.ErrPostNotFound)
	})

	t.Run("happy path - owner deletes", func(t *testing.T) {
		svc, posts, _ := newPostFixture(t)
		posts.EXPECT().FindActiveByID(gomock.Any(), uint(10)).Return(&models.Post{ID: 10, UserID: 1}, nil)
		posts.EXPECT().Deactivate(gomock.Any(), uint(10)).Return(nil)

		assert.NoError(t, svc.Delete(ctx, user, 10))
	})
}

func TestPostService_Listings(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - feed pages are clamped", func(t *testing.T) {
		svc, posts, _ := newPostFixture(t)
		posts.EXPECT().Feed(gomock.Any(), uint(1), 1, 100).Return([]models.Post{{ID: 3}}, int64(1), nil)

		got, total, err := svc.Feed(ctx, 1, -1, 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, got, 1)
	})

	t.Run("sad path - posts of a deactivated user", func(t *testing.T) {
		svc, _, users, _ := newPostFixtureWithUsers(t)
		users.EXPECT().FindActiveByID(gomock.Any(), uint(2)).Return(nil, nil)

		_, _, err := svc.ListByUser(ctx, 1, 2, 1, 20)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("happy path - own posts skip the user lookup", func(t *testing.T) {
		svc, posts, _ := newPostFixture(t)
		posts.EXPECT().ListByUser(gomock.Any(), uint(1), 1, 20).Return(nil, int64(0), nil)

		_, total, err := svc.ListByUser(ctx, 1, 1, 1, 20)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("sad path - posts of a missing film", func(t *testing.T) {
		svc, _, films := newPostFixture(t)
		films.EXPECT().Get(gomock.Any(), uint(9)).Return(nil, apperrors.ErrFilmNotFound)

		_, _, err := svc.ListByFilm(ctx, 1, 9, 1, 20)
		assert.ErrorIs(t, err, apperrors.ErrFilmNotFound)
	})
}
