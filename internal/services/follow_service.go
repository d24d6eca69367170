package services

import (
	"context"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/models"
	"flicks-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type FollowService interface {
	Follow(ctx context.Context, actor *models.User, targetID uint) error
	Unfollow(ctx context.Context, actor *models.User, targetID uint) error
	// RemoveFollower makes target stop following actor.
	RemoveFollower(ctx context.Context, actor *models.User, targetID uint) error
	Followers(ctx context.Context, viewerID, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error)
	Followings(ctx context.Context, viewerID, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error)
}

type followService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
	logger  *logrus.Logger
}

func NewFollowService(users repository.UserRepository, follows repository.FollowRepository, logger *logrus.Logger) FollowService {
	return &followService{
		users:   users,
		follows: follows,
		logger:  logger,
	}
}

func (s *followService) Follow(ctx context.Context, actor *models.User, targetID uint) error {
	if actor.ID == targetID {
		return apperrors.ErrCannotFollowSelf
	}
	if err := s.requireActive(ctx, targetID); err != nil {
		return err
	}
	if err := s.follows.Add(ctx, actor.ID, targetID); err != nil {
		return internal("failed to follow", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": actor.ID, "target_id": targetID}).Info("User followed")
	return nil
}

func (s *followService) Unfollow(ctx context.Context, actor *models.User, targetID uint) error {
	if actor.ID == targetID {
		return apperrors.ErrCannotUnfollowSelf
	}
	if err := s.follows.Remove(ctx, actor.ID, targetID); err != nil {
		return internal("failed to unfollow", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": actor.ID, "target_id": targetID}).Info("User unfollowed")
	return nil
}

func (s *followService) RemoveFollower(ctx context.Context, actor *models.User, targetID uint) error {
	if actor.ID == targetID {
		return apperrors.ErrCannotRemoveSelf
	}
	if err := s.follows.Remove(ctx, targetID, actor.ID); err != nil {
		return internal("failed to remove follower", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": actor.ID, "follower_id": targetID}).Info("Follower removed")
	return nil
}

func (s *followService) Followers(ctx context.Context, viewerID, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error) {
	return s.list(ctx, viewerID, userID, search, page, limit, s.follows.Followers)
}

func (s *followService) Followings(ctx context.Context, viewerID, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error) {
	return s.list(ctx, viewerID, userID, search, page, limit, s.follows.Followings)
}

type edgeLister func(ctx context.Context, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error)

func (s *followService) list(ctx context.Context, viewerID, userID uint, search string, page, limit int, fetch edgeLister) ([]models.UserSummary, int64, error) {
	if viewerID != userID {
		if err := s.requireActive(ctx, userID); err != nil {
			return nil, 0, err
		}
	}

	page, limit = normalizePage(page, limit)
	rows, total, err := fetch(ctx, userID, search, page, limit)
	if err != nil {
		return nil, 0, internal("failed to list users", err)
	}
	if err := annotateFollowed(ctx, s.follows, viewerID, rows); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *followService) requireActive(ctx context.Context, userID uint) error {
	user, err := s.users.FindActiveByID(ctx, userID)
	if err != nil {
		return internal("failed to load user", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// annotateFollowed sets IsFollowed on rows relative to viewerID.
func annotateFollowed(ctx context.Context, follows repository.FollowRepository, viewerID uint, rows []models.UserSummary) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	followed, err := follows.FollowedAmong(ctx, viewerID, ids)
	if err != nil {
		return internal("failed to read follow state", err)
	}
	for i := range rows {
		rows[i].IsFollowed = followed[rows[i].ID]
	}
	return nil
}
