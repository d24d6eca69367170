package services_test

import (
	"context"
	"errors"
	"testing"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/mocks"
	"flicks-backend/internal/models"
	"flicks-backend/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	svc     services.ProfileService
	users   *mocks.MockUserRepository
	follows *mocks.MockFollowRepository
	marks   *mocks.MockFilmMarkRepository
	storage *mocks.MockMediaStorage
}

func newProfileFixture(t *testing.T) *profileFixture {
	ctrl := gomock.NewController(t)
	f := &profileFixture{
		users:   mocks.NewMockUserRepository(ctrl),
		follows: mocks.NewMockFollowRepository(ctrl),
		marks:   mocks.NewMockFilmMarkRepository(ctrl),
		storage: mocks.NewMockMediaStorage(ctrl),
	}
	f.svc = services.NewProfileService(f.users, f.follows, f.marks, f.storage, fakeTx{}, quietLogger())
	return f
}

func (f *profileFixture) expectCounts(userID uint) {
	f.follows.EXPECT().CountFollowers(gomock.Any(), userID).Return(int64(2), nil)
	f.follows.EXPECT().CountFollowings(gomock.Any(), userID).Return(int64(3), nil)
	f.marks.EXPECT().CountByUser(gomock.Any(), userID, models.ListWatched).Return(int64(5), nil)
}

func TestProfileService_Other(t *testing.T) {
	ctx := context.Background()
	viewer := &models.User{ID: 1, Username: "alice"}

	t.Run("happy path - another user's profile", func(t *testing.T) {
		f := newProfileFixture(t)
		f.users.EXPECT().FindActiveByID(gomock.Any(), uint(2)).Return(&models.User{ID: 2, Username: "bob"}, nil)
		f.users.EXPECT().FindOrCreateProfile(gomock.Any(), uint(2)).Return(&models.Profile{UserID: 2, Name: "Bob"}, nil)
		f.expectCounts(2)
		f.follows.EXPECT().IsFollowing(gomock.Any(), uint(1), uint(2)).Return(true, nil)

		detail, err := f.svc.Other(ctx, viewer, 2)
		require.NoError(t, err)
		assert.Equal(t, "bob", detail.Username)
		assert.Equal(t, "Bob", detail.Name)
		assert.Equal(t, int64(2), detail.FollowersCount)
		assert.Equal(t, int64(3), detail.FollowingsCount)
		assert.Equal(t, int64(5), detail.FilmsWatchedCount)
		require.NotNil(t, detail.IsFollowed)
		assert.True(t, *detail.IsFollowed)
	})

	t.Run("happy path - own profile has no follow flag", func(t *testing.T) {
		f := newProfileFixture(t)
		f.users.EXPECT().FindOrCreateProfile(gomock.Any(), uint(1)).Return(&models.Profile{UserID: 1}, nil)
		f.expectCounts(1)

		detail, err := f.svc.Other(ctx, viewer, 1)
		require.NoError(t, err)
		assert.Nil(t, detail.IsFollowed)
	})

	t.Run("sad path - deactivated user", func(t *testing.T) {
		f := newProfileFixture(t)
		f.users.EXPECT().FindActiveByID(gomock.Any(), uint(3)).Return(nil, nil)

		_, err := f.svc.Other(ctx, viewer, 3)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestProfileService_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - rename and new bio", func(t *testing.T) {
		f := newProfileFixture(t)
		user := &models.User{ID: 1, Username: "alice"}
		profile := &models.Profile{UserID: 1, Name: "Alice", Bio: "old"}
		f.users.EXPECT().UsernameTaken(gomock.Any(), "alice2", uint(1)).Return(false, nil)
		f.users.EXPECT().UpdateUsername(gomock.Any(), uint(1), "alice2").Return(nil)
		f.users.EXPECT().FindOrCreateProfile(gomock.Any(), uint(1)).Return(profile, nil).Times(2)
		f.users.EXPECT().UpdateProfile(gomock.Any(), profile).Return(nil)
		f.expectCounts(1)

		detail, err := f.svc.Edit(ctx, user, services.ProfileInput{Username: strPtr(" alice2 "), Bio: strPtr("new")})
		require.NoError(t, err)
		assert.Equal(t, "alice2", detail.Username)
		assert.Equal(t, "new", detail.Bio)
		assert.Equal(t, "Alice", detail.Name)
	})

	t.Run("sad path - username belongs to someone else", func(t *testing.T) {
		f := newProfileFixture(t)
		user := &models.User{ID: 1, Username: "alice"}
		f.users.EXPECT().UsernameTaken(gomock.Any(), "Bob", uint(1)).Return(true, nil)

		_, err := f.svc.Edit(ctx, user, services.ProfileInput{Username: strPtr("Bob")})
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
		assert.Equal(t, "alice", user.Username)
	})
}

func TestProfileService_PresignMedia(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 1}

	t.Run("happy path - new photo replaces our old object", func(t *testing.T) {
		f := newProfileFixture(t)
		profile := &models.Profile{UserID: 1, Photo: "http://minio/flicks/profiles/1/photo/old.png"}
		f.users.EXPECT().FindOrCreateProfile(gomock.Any(), uint(1)).Return(profile, nil)
		f.storage.EXPECT().PresignUpload(gomock.Any(), "profiles/1/photo", "me.png").
			Return("http://minio/upload", "http://minio/flicks/profiles/1/photo/me.png", nil)
		f.users.EXPECT().UpdateProfile(gomock.Any(), profile).Return(nil)
		f.storage.EXPECT().Owns("http://minio/flicks/profiles/1/photo/old.png").Return(true)
		f.storage.EXPECT().Delete(gomock.Any(), "http://minio/flicks/profiles/1/photo/old.png").Return(errors.New("gone"))

		got, err := f.svc.PresignMedia(ctx, user, services.MediaPhoto, "me.png")
		require.NoError(t, err)
		assert.Equal(t, "http://minio/upload", got.UploadURL)
		assert.Equal(t, "http://minio/flicks/profiles/1/photo/me.png", profile.Photo)
	})

	t.Run("happy path - banner with no previous object", func(t *testing.T) {
		f := newProfileFixture(t)
		profile := &models.Profile{UserID: 1}
		f.users.EXPECT().FindOrCreateProfile(gomock.Any(), uint(1)).Return(profile, nil)
		f.storage.EXPECT().PresignUpload(gomock.Any(), "profiles/1/banner", "b.jpg").Return("up", "pub", nil)
		f.users.EXPECT().UpdateProfile(gomock.Any(), profile).Return(nil)
		f.storage.EXPECT().Owns("").Return(false)

		got, err := f.svc.PresignMedia(ctx, user, services.MediaBanner, "b.jpg")
		require.NoError(t, err)
		assert.Equal(t, services.MediaBanner, got.Kind)
		assert.Equal(t, "pub", profile.Banner)
	})

	t.Run("sad path - bad kind and blank filename", func(t *testing.T) {
		f := newProfileFixture(t)
		_, err := f.svc.PresignMedia(ctx, user, services.MediaKind("avatar"), "a.png")
		assert.ErrorIs(t, err, apperrors.ErrInvalidMediaKind)
		_, err = f.svc.PresignMedia(ctx, user, services.MediaPhoto, " ")
		assert.ErrorIs(t, err, apperrors.ErrFilenameRequired)
	})
}

func TestProfileService_Search(t *testing.T) {
	f := newProfileFixture(t)
	viewer := &models.User{ID: 1}
	f.users.EXPECT().Search(gomock.Any(), uint(1), "bo", 1, 20).
		Return([]models.UserSummary{{ID: 2, Username: "bob"}}, int64(1), nil)
	f.follows.EXPECT().FollowedAmong(gomock.Any(), uint(1), []uint{2}).Return(map[uint]bool{2: true}, nil)

	rows, total, err := f.svc.Search(context.Background(), viewer, " bo ", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.True(t, rows[0].IsFollowed)
}
