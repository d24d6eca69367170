package repository

import (
	"context"
	"strings"

	"flicks-backend/internal/database"
	"flicks-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserRepository is the account store: users and their profiles.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindActiveByID(ctx context.Context, id uint) (*models.User, error)
	FindActiveByPhone(ctx context.Context, phone string) (*models.User, error)
	// FindActiveByLogin matches the identifier against username (case-sensitive) or phone.
	FindActiveByLogin(ctx context.Context, identifier string) (*models.User, error)
	ExistsByPhone(ctx context.Context, phone string, activeOnly bool) (bool, error)
	ExistsByUsername(ctx context.Context, username string, activeOnly bool) (bool, error)
	// UsernameTaken is a case-insensitive check over all users, active or not.
	UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
	UpdatePassword(ctx context.Context, userID uint, hash string) error
	UpdateUsername(ctx context.Context, userID uint, username string) error
	Deactivate(ctx context.Context, userID uint) error

	FindOrCreateProfile(ctx context.Context, userID uint) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error

	Search(ctx context.Context, excludeID uint, query string, page, limit int) ([]models.UserSummary, int64, error)
}

type userRepository struct {
	base
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{base: newBase(db)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return wrap(r.db.WithContext(ctx).Create(user).Error, "userRepo.Create")
}

func (r *userRepository) findActive(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Profile", "is_active = ?", true).
		Where("users.is_active = ?", true).
		Where(query, args...).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap(err, "userRepo.findActive")
	}
	return &user, nil
}

func (r *userRepository) FindActiveByID(ctx context.Context, id uint) (*models.User, error) {
	return r.findActive(ctx, "users.id = ?", id)
}

func (r *userRepository) FindActiveByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.findActive(ctx, "users.phone = ?", phone)
}

func (r *userRepository) FindActiveByLogin(ctx context.Context, identifier string) (*models.User, error) {
	return r.findActive(ctx, "users.username = ? OR users.phone = ?", identifier, identifier)
}

func (r *userRepository) exists(ctx context.Context, activeOnly bool, query string, args ...interface{}) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	q := r.db.WithContext(ctx).Model(&models.User{}).Where(query, args...)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, wrap(err, "userRepo.exists")
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByPhone(ctx context.Context, phone string, activeOnly bool) (bool, error) {
	return r.exists(ctx, activeOnly, "phone = ?", phone)
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string, activeOnly bool) (bool, error) {
	return r.exists(ctx, activeOnly, "username = ?", username)
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	if excludeID == 0 {
		return r.exists(ctx, false, "LOWER(username) = ?", strings.ToLower(username))
	}
	return r.exists(ctx, false, "LOWER(username) = ? AND id <> ?", strings.ToLower(username), excludeID)
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID uint, hash string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", hash).Error
	return wrap(err, "userRepo.UpdatePassword")
}

func (r *userRepository) UpdateUsername(ctx context.Context, userID uint, username string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("username", username).Error
	return wrap(err, "userRepo.UpdateUsername")
}

func (r *userRepository) Deactivate(ctx context.Context, userID uint) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		ctx, cancel := r.withTimeout(ctx)
		defer cancel()

		db := r.db.WithContext(ctx)
		if err := db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("is_active", false).Error; err != nil {
			return wrap(err, "userRepo.Deactivate.Profile")
		}
		if err := db.Model(&models.User{}).Where("id = ?", userID).Update("is_active", false).Error; err != nil {
			return wrap(err, "userRepo.Deactivate.User")
		}
		return nil
	})
}

func (r *userRepository) FindOrCreateProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var profile models.Profile
	err := r.db.WithContext(ctx).
		Where(models.Profile{UserID: userID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, wrap(err, "userRepo.FindOrCreateProfile")
	}
	return &profile, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Model(profile).
		Select("bio", "name", "photo", "banner").
		Updates(profile).Error
	return wrap(err, "userRepo.UpdateProfile")
}

func (r *userRepository) Search(ctx context.Context, excludeID uint, query string, page, limit int) ([]models.UserSummary, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	q := summaryQuery(r.db.WithContext(ctx)).Where("users.id <> ?", excludeID)
	q = applyUserSearch(q, query)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, "userRepo.Search.Count")
	}

	var rows []models.UserSummary
	err := q.Select(summaryColumns).
		Order("users.created_at DESC").
		Offset(offset(page, limit)).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, wrap(err, "userRepo.Search")
	}
	return rows, total, nil
}

const summaryColumns = "users.id AS id, users.username AS username, COALESCE(profiles.name, '') AS name, COALESCE(profiles.photo, '') AS photo"

// summaryQuery selects active users joined with their profile.
func summaryQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.User{}).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Where("users.is_active = ?", true)
}

func applyUserSearch(q *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return q
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return q.Where("LOWER(users.username) LIKE ? OR LOWER(COALESCE(profiles.name, '')) LIKE ?", pattern, pattern)
}
