package repository

import (
	"context"
	"testing"
	"time"

	"flicks-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, repo PostRepository, userID, filmID uint, caption *string, at time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		UserID:    userID,
		FilmID:    filmID,
		Genres:    map[string]int{"drama": 7},
		Caption:   caption,
		IsActive:  true,
		CreatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func Test_PostRepository_CreateFindUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", "+989120000001")
	film := seedFilm(t, db, "tt0000001", "Heat")
	post := seedPost(t, repo, user.ID, film.ID, nil, time.Now())

	found, err := repo.FindActiveByUserAndFilm(ctx, user.ID, film.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, post.ID, found.ID)
	require.NotNil(t, found.Film)
	assert.Equal(t, "Heat", found.Film.Name)
	assert.Equal(t, map[string]int{"drama": 7}, found.Genres)

	rate := 8.5
	found.Rate = &rate
	found.Genres = map[string]int{"crime": 9}
	found.Caption = strPtr("tense")
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindActiveByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Rate)
	assert.Equal(t, 8.5, *updated.Rate)
	assert.Equal(t, map[string]int{"crime": 9}, updated.Genres)
	assert.Equal(t, "tense", *updated.Caption)

	require.NoError(t, repo.DeactivateByUserAndFilm(ctx, user.ID, film.ID))
	gone, err := repo.FindActiveByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func Test_PostRepository_OneActivePostPerFilm(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", "+989120000001")
	film := seedFilm(t, db, "tt0000001", "Heat")
	seedPost(t, repo, user.ID, film.ID, nil, time.Now())

	second := &models.Post{UserID: user.ID, FilmID: film.ID, Genres: map[string]int{"crime": 5}, IsActive: true}
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)

	// a soft-deleted post frees the slot
	require.NoError(t, repo.DeactivateByUserAndFilm(ctx, user.ID, film.ID))
	third := &models.Post{UserID: user.ID, FilmID: film.ID, Genres: map[string]int{"crime": 5}, IsActive: true}
	require.NoError(t, repo.Create(ctx, third))
}

func Test_PostRepository_Feed(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	me := seedUser(t, db, "me", "+989120000001")
	friend := seedUser(t, db, "friend", "+989120000002")
	stranger := seedUser(t, db, "stranger", "+989120000003")
	left := seedUser(t, db, "left", "+989120000004")
	film := seedFilm(t, db, "tt0000001", "Heat")

	require.NoError(t, follows.Add(ctx, me.ID, friend.ID))
	require.NoError(t, follows.Add(ctx, me.ID, left.ID))

	now := time.Now()
	mine := seedPost(t, repo, friend.ID, film.ID, nil, now)
	seedPost(t, repo, stranger.ID, film.ID, nil, now)
	seedPost(t, repo, left.ID, film.ID, nil, now)
	deactivateUser(t, db, left.ID)

	posts, total, err := repo.Feed(ctx, me.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, mine.ID, posts[0].ID)
}

func Test_PostRepository_ListByFilmPutsFollowedCaptionsFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	viewer := seedUser(t, db, "viewer", "+989120000001")
	friend := seedUser(t, db, "friend", "+989120000002")
	quiet := seedUser(t, db, "quiet", "+989120000003")
	stranger := seedUser(t, db, "stranger", "+989120000004")
	film := seedFilm(t, db, "tt0000001", "Heat")

	require.NoError(t, follows.Add(ctx, viewer.ID, friend.ID))
	require.NoError(t, follows.Add(ctx, viewer.ID, quiet.ID))

	base := time.Now().Add(-time.Hour)
	friendPost := seedPost(t, repo, friend.ID, film.ID, strPtr("great"), base)
	quietPost := seedPost(t, repo, quiet.ID, film.ID, nil, base.Add(time.Minute))
	strangerPost := seedPost(t, repo, stranger.ID, film.ID, strPtr("meh"), base.Add(2*time.Minute))

	posts, total, err := repo.ListByFilm(ctx, viewer.ID, film.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, posts, 3)
	assert.Equal(t, friendPost.ID, posts[0].ID)
	assert.Equal(t, strangerPost.ID, posts[1].ID)
	assert.Equal(t, quietPost.ID, posts[2].ID)

	active, err := repo.ActiveByFilm(ctx, film.ID)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}
