package repository

import (
	"context"

	"flicks-backend/internal/database"
	"flicks-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	FindActiveByID(ctx context.Context, id uint) (*models.Post, error)
	FindActiveByUserAndFilm(ctx context.Context, userID, filmID uint) (*models.Post, error)
	Deactivate(ctx context.Context, id uint) error
	DeactivateByUserAndFilm(ctx context.Context, userID, filmID uint) error
	ListByUser(ctx context.Context, userID uint, page, limit int) ([]models.Post, int64, error)
	// Feed lists active posts written by the active users userID follows.
	Feed(ctx context.Context, userID uint, page, limit int) ([]models.Post, int64, error)
	// ListByFilm puts captioned posts by users the viewer follows first.
	ListByFilm(ctx context.Context, viewerID, filmID uint, page, limit int) ([]models.Post, int64, error)
	// ActiveByFilm returns every active post of a film, used for aggregates.
	ActiveByFilm(ctx context.Context, filmID uint) ([]models.Post, error)
}

type postRepository struct {
	base
}

func NewPostRepository(db *database.Database) PostRepository {
	return &postRepository{base: newBase(db)}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return wrap(r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error, "postRepo.Create")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Model(post).
		Select("genres", "rate", "caption", "quote").
		Updates(post).Error
	return wrap(err, "postRepo.Update")
}

func (r *postRepository) findActive(ctx context.Context, query string, args ...interface{}) (*models.Post, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Film").
		Where("posts.is_active = ?", true).
		Where(query, args...).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap(err, "postRepo.findActive")
	}
	return &post, nil
}

func (r *postRepository) FindActiveByID(ctx context.Context, id uint) (*models.Post, error) {
	return r.findActive(ctx, "posts.id = ?", id)
}

func (r *postRepository) FindActiveByUserAndFilm(ctx context.Context, userID, filmID uint) (*models.Post, error) {
	return r.findActive(ctx, "posts.user_id = ? AND posts.film_id = ?", userID, filmID)
}

func (r *postRepository) Deactivate(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", id).
		Update("is_active", false).Error
	return wrap(err, "postRepo.Deactivate")
}

func (r *postRepository) DeactivateByUserAndFilm(ctx context.Context, userID, filmID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("user_id = ? AND film_id = ? AND is_active = ?", userID, filmID, true).
		Update("is_active", false).Error
	return wrap(err, "postRepo.DeactivateByUserAndFilm")
}

// page counts and loads one page of query, newest first.
func (r *postRepository) page(query *gorm.DB, page, limit int, op string) ([]models.Post, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, op+".Count")
	}

	var posts []models.Post
	err := query.Preload("Film").
		Order("posts.created_at DESC").
		Order("posts.id DESC").
		Offset(offset(page, limit)).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, wrap(err, op)
	}
	return posts, total, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, page, limit int) ([]models.Post, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("posts.user_id = ? AND posts.is_active = ?", userID, true)
	return r.page(query, page, limit, "postRepo.ListByUser")
}

func (r *postRepository) Feed(ctx context.Context, userID uint, page, limit int) ([]models.Post, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	followings := db.Model(&models.UserFollowing{}).
		Select("user_followings.following_id").
		Joins("JOIN users ON users.id = user_followings.following_id").
		Where("user_followings.user_id = ? AND users.is_active = ?", userID, true)

	query := db.Model(&models.Post{}).
		Where("posts.is_active = ?", true).
		Where("posts.user_id IN (?)", followings)
	return r.page(query, page, limit, "postRepo.Feed")
}

func (r *postRepository) ListByFilm(ctx context.Context, viewerID, filmID uint, page, limit int) ([]models.Post, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Post{}).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.film_id = ? AND posts.is_active = ? AND users.is_active = ?", filmID, true, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, "postRepo.ListByFilm.Count")
	}

	// an expression order replaces any column orders, so the whole ORDER BY lives here
	ordering := clause.OrderBy{Expression: clause.Expr{
		SQL: "CASE WHEN posts.caption IS NOT NULL AND posts.caption <> '' AND posts.user_id IN " +
			"(SELECT following_id FROM user_followings WHERE user_id = ?) THEN 0 ELSE 1 END, " +
			"posts.created_at DESC, posts.id DESC",
		Vars:               []interface{}{viewerID},
		WithoutParentheses: true,
	}}

	var posts []models.Post
	err := query.Preload("Film").
		Order(ordering).
		Offset(offset(page, limit)).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, wrap(err, "postRepo.ListByFilm")
	}
	return posts, total, nil
}

func (r *postRepository) ActiveByFilm(ctx context.Context, filmID uint) ([]models.Post, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var posts []models.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.film_id = ? AND posts.is_active = ? AND users.is_active = ?", filmID, true, true).
		Find(&posts).Error
	if err != nil {
		return nil, wrap(err, "postRepo.ActiveByFilm")
	}
	return posts, nil
}
