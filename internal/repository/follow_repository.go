package repository

import (
	"context"

	"flicks-backend/internal/database"
	"flicks-backend/internal/models"

	"gorm.io/gorm/clause"
)

// FollowRepository keeps the two mirrored edge tables in step. Every mutation
// writes both sides in one transaction.
type FollowRepository interface {
	// Add records that followerID follows userID. Adding an existing edge is a no-op.
	Add(ctx context.Context, followerID, userID uint) error
	// Remove deletes the edge "followerID follows userID" from both tables.
	Remove(ctx context.Context, followerID, userID uint) error
	IsFollowing(ctx context.Context, followerID, userID uint) (bool, error)
	// FollowedAmong returns the subset of ids that followerID follows.
	FollowedAmong(ctx context.Context, followerID uint, ids []uint) (map[uint]bool, error)
	Followers(ctx context.Context, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error)
	Followings(ctx context.Context, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowings(ctx context.Context, userID uint) (int64, error)
}

type followRepository struct {
	base
}

func NewFollowRepository(db *database.Database) FollowRepository {
	return &followRepository{base: newBase(db)}
}

func (r *followRepository) Add(ctx context.Context, followerID, userID uint) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		ctx, cancel := r.withTimeout(ctx)
		defer cancel()

		db := r.db.WithContext(ctx)
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.UserFollowing{UserID: followerID, FollowingID: userID}).Error; err != nil {
			return wrap(err, "followRepo.Add.Following")
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.UserFollower{UserID: userID, FollowerID: followerID}).Error; err != nil {
			return wrap(err, "followRepo.Add.Follower")
		}
		return nil
	})
}

func (r *followRepository) Remove(ctx context.Context, followerID, userID uint) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		ctx, cancel := r.withTimeout(ctx)
		defer cancel()

		db := r.db.WithContext(ctx)
		if err := db.Where("user_id = ? AND following_id = ?", followerID, userID).
			Delete(&models.UserFollowing{}).Error; err != nil {
			return wrap(err, "followRepo.Remove.Following")
		}
		if err := db.Where("user_id = ? AND follower_id = ?", userID, followerID).
			Delete(&models.UserFollower{}).Error; err != nil {
			return wrap(err, "followRepo.Remove.Follower")
		}
		return nil
	})
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, userID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserFollowing{}).
		Where("user_id = ? AND following_id = ?", followerID, userID).
		Count(&count).Error
	if err != nil {
		return false, wrap(err, "followRepo.IsFollowing")
	}
	return count > 0, nil
}

func (r *followRepository) FollowedAmong(ctx context.Context, followerID uint, ids []uint) (map[uint]bool, error) {
	out := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var followed []uint
	err := r.db.WithContext(ctx).Model(&models.UserFollowing{}).
		Where("user_id = ? AND following_id IN ?", followerID, ids).
		Pluck("following_id", &followed).Error
	if err != nil {
		return nil, wrap(err, "followRepo.FollowedAmong")
	}
	for _, id := range followed {
		out[id] = true
	}
	return out, nil
}

func (r *followRepository) Followers(ctx context.Context, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error) {
	return r.list(ctx, "user_followers", "follower_id", userID, search, page, limit)
}

func (r *followRepository) Followings(ctx context.Context, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error) {
	return r.list(ctx, "user_followings", "following_id", userID, search, page, limit)
}

// list pages over the active users on the other end of userID's edges in table.
func (r *followRepository) list(ctx context.Context, table, column string, userID uint, search string, page, limit int) ([]models.UserSummary, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	q := summaryQuery(r.db.WithContext(ctx)).
		Joins("JOIN "+table+" edges ON edges."+column+" = users.id").
		Where("edges.user_id = ?", userID)
	q = applyUserSearch(q, search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, "followRepo.list.Count")
	}

	var rows []models.UserSummary
	err := q.Select(summaryColumns).
		Order("edges.created_at DESC").
		Offset(offset(page, limit)).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, wrap(err, "followRepo.list")
	}
	return rows, total, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "user_followers", "follower_id", userID)
}

func (r *followRepository) CountFollowings(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "user_followings", "following_id", userID)
}

// count only counts edges whose other end is an active user.
func (r *followRepository) count(ctx context.Context, table, column string, userID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Table(table+" edges").
		Joins("JOIN users ON users.id = edges."+column).
		Where("edges.user_id = ? AND users.is_active = ?", userID, true).
		Count(&total).Error
	if err != nil {
		return 0, wrap(err, "followRepo.count")
	}
	return total, nil
}

