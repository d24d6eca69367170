package services

import (
	"context"
	"fmt"
	"strings"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/models"
	"flicks-backend/internal/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type MediaKind string

const (
	MediaPhoto  MediaKind = "photo"
	MediaBanner MediaKind = "banner"
)

// ProfileInput carries the editable fields. Nil fields are left unchanged.
type ProfileInput struct {
	Username *string
	Name     *string
	Bio      *string
}

type PresignedMedia struct {
	Kind      MediaKind `json:"kind" example:"photo"`
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
}

type ProfileService interface {
	Get(ctx context.Context, user *models.User) (*models.ProfileDetail, error)
	// Other shows another user's profile with is_followed relative to viewer.
	Other(ctx context.Context, viewer *models.User, userID uint) (*models.ProfileDetail, error)
	Edit(ctx context.Context, user *models.User, in ProfileInput) (*models.ProfileDetail, error)
	Delete(ctx context.Context, user *models.User) error
	// PresignMedia stores the future public URL on the profile and returns
	// where the client should upload it.
	PresignMedia(ctx context.Context, user *models.User, kind MediaKind, filename string) (*PresignedMedia, error)
	Search(ctx context.Context, viewer *models.User, query string, page, limit int) ([]models.UserSummary, int64, error)
}

type profileService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
	marks   repository.FilmMarkRepository
	storage MediaStorage
	tx      Transactor
	logger  *logrus.Logger
}

func NewProfileService(
	users repository.UserRepository,
	follows repository.FollowRepository,
	marks repository.FilmMarkRepository,
	storage MediaStorage,
	tx Transactor,
	logger *logrus.Logger,
) ProfileService {
	return &profileService{
		users:   users,
		follows: follows,
		marks:   marks,
		storage: storage,
		tx:      tx,
		logger:  logger,
	}
}

func (s *profileService) Get(ctx context.Context, user *models.User) (*models.ProfileDetail, error) {
	return s.detail(ctx, user)
}

func (s *profileService) Other(ctx context.Context, viewer *models.User, userID uint) (*models.ProfileDetail, error) {
	if viewer.ID == userID {
		return s.detail(ctx, viewer)
	}

	user, err := s.users.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	detail, err := s.detail(ctx, user)
	if err != nil {
		return nil, err
	}
	followed, err := s.follows.IsFollowing(ctx, viewer.ID, userID)
	if err != nil {
		return nil, internal("failed to read follow state", err)
	}
	detail.IsFollowed = &followed
	return detail, nil
}

func (s *profileService) detail(ctx context.Context, user *models.User) (*models.ProfileDetail, error) {
	profile, err := s.users.FindOrCreateProfile(ctx, user.ID)
	if err != nil {
		return nil, internal("failed to load profile", err)
	}

	detail := &models.ProfileDetail{
		ID:       user.ID,
		Username: user.Username,
		Bio:      profile.Bio,
		Name:     profile.Name,
		Photo:    profile.Photo,
		Banner:   profile.Banner,
	}
	if detail.FollowersCount, err = s.follows.CountFollowers(ctx, user.ID); err != nil {
		return nil, internal("failed to count followers", err)
	}
	if detail.FollowingsCount, err = s.follows.CountFollowings(ctx, user.ID); err != nil {
		return nil, internal("failed to count followings", err)
	}
	if detail.FilmsWatchedCount, err = s.marks.CountByUser(ctx, user.ID, models.ListWatched); err != nil {
		return nil, internal("failed to count watched films", err)
	}
	return detail, nil
}

func (s *profileService) Edit(ctx context.Context, user *models.User, in ProfileInput) (*models.ProfileDetail, error) {
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if in.Username != nil && *in.Username != user.Username {
			username := strings.TrimSpace(*in.Username)
			taken, err := s.users.UsernameTaken(ctx, username, user.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.ErrUsernameTaken
			}
			if err := s.users.UpdateUsername(ctx, user.ID, username); err != nil {
				if errors.Is(err, repository.ErrDuplicate) {
					return apperrors.ErrUsernameTaken
				}
				return err
			}
			user.Username = username
		}

		profile, err := s.users.FindOrCreateProfile(ctx, user.ID)
		if err != nil {
			return err
		}
		if in.Name != nil {
			profile.Name = *in.Name
		}
		if in.Bio != nil {
			profile.Bio = *in.Bio
		}
		return s.users.UpdateProfile(ctx, profile)
	})
	if err != nil {
		return nil, internal("failed to edit profile", err)
	}

	s.logger.WithField("user_id", user.ID).Info("Profile edited")
	return s.detail(ctx, user)
}

func (s *profileService) Delete(ctx context.Context, user *models.User) error {
	if err := s.users.Deactivate(ctx, user.ID); err != nil {
		return internal("failed to delete profile", err)
	}
	s.logger.WithField("user_id", user.ID).Info("Profile deleted")
	return nil
}

func (s *profileService) PresignMedia(ctx context.Context, user *models.User, kind MediaKind, filename string) (*PresignedMedia, error) {
	if kind != MediaPhoto && kind != MediaBanner {
		return nil, apperrors.ErrInvalidMediaKind
	}
	if strings.TrimSpace(filename) == "" {
		return nil, apperrors.ErrFilenameRequired
	}

	profile, err := s.users.FindOrCreateProfile(ctx, user.ID)
	if err != nil {
		return nil, internal("failed to load profile", err)
	}

	prefix := fmt.Sprintf("profiles/%d/%s", user.ID, kind)
	uploadURL, publicURL, err := s.storage.PresignUpload(ctx, prefix, filename)
	if err != nil {
		return nil, apperrors.Internal("failed to presign upload", err)
	}

	previous := profile.Photo
	if kind == MediaBanner {
		previous = profile.Banner
		profile.Banner = publicURL
	} else {
		profile.Photo = publicURL
	}
	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		return nil, internal("failed to update profile", err)
	}

	// Delete old object if it was ours
	if s.storage.Owns(previous) {
		if err := s.storage.Delete(ctx, previous); err != nil {
			s.logger.WithError(err).Warn("Failed to delete old profile media")
		}
	}

	return &PresignedMedia{Kind: kind, UploadURL: uploadURL, PublicURL: publicURL}, nil
}

func (s *profileService) Search(ctx context.Context, viewer *models.User, query string, page, limit int) ([]models.UserSummary, int64, error) {
	page, limit = normalizePage(page, limit)
	rows, total, err := s.users.Search(ctx, viewer.ID, strings.TrimSpace(query), page, limit)
	if err != nil {
		return nil, 0, internal("failed to search users", err)
	}
	if err := annotateFollowed(ctx, s.follows, viewer.ID, rows); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
