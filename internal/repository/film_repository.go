package repository

import (
	"context"
	"strings"

	"flicks-backend/internal/database"
	"flicks-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type FilmRepository interface {
	Create(ctx context.Context, film *models.Film) error
	FindActiveByID(ctx context.Context, id uint) (*models.Film, error)
	FindActiveByIMDBID(ctx context.Context, imdbID string) (*models.Film, error)
	FindActiveByIMDBIDs(ctx context.Context, imdbIDs []string) ([]models.Film, error)
	FindAll(ctx context.Context, page, limit int, sortBy, order string) ([]models.Film, int64, error)
}

type filmRepository struct {
	base
}

func NewFilmRepository(db *database.Database) FilmRepository {
	return &filmRepository{base: newBase(db)}
}

// Create stores the film together with its artist associations. Artists
// must already exist.
func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).
		Omit("Writers.*", "Directors.*", "Actors.*").
		Create(film).Error
	return wrap(err, "filmRepo.Create")
}

func (r *filmRepository) FindActiveByID(ctx context.Context, id uint) (*models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var film models.Film
	err := r.db.WithContext(ctx).
		Preload("Writers", "is_active = ?", true).
		Preload("Directors", "is_active = ?", true).
		Preload("Actors", "is_active = ?", true).
		Where("is_active = ?", true).
		First(&film, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap(err, "filmRepo.FindActiveByID")
	}
	return &film, nil
}

func (r *filmRepository) FindActiveByIMDBID(ctx context.Context, imdbID string) (*models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var film models.Film
	err := r.db.WithContext(ctx).
		Where("imdb_id = ? AND is_active = ?", imdbID, true).
		First(&film).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap(err, "filmRepo.FindActiveByIMDBID")
	}
	return &film, nil
}

func (r *filmRepository) FindActiveByIMDBIDs(ctx context.Context, imdbIDs []string) ([]models.Film, error) {
	if len(imdbIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var films []models.Film
	err := r.db.WithContext(ctx).
		Where("imdb_id IN ? AND is_active = ?", imdbIDs, true).
		Find(&films).Error
	if err != nil {
		return nil, wrap(err, "filmRepo.FindActiveByIMDBIDs")
	}
	return films, nil
}

// sortExpressions maps the accepted sort keys to SQL. Counts only consider
// active rows.
var sortExpressions = map[string]string{
	"imdb":       "films.imdb",
	"fav":        "(SELECT COUNT(*) FROM film_marks WHERE film_marks.film_id = films.id AND film_marks.list = 'favorite')",
	"watched":    "(SELECT COUNT(*) FROM film_marks WHERE film_marks.film_id = films.id AND film_marks.list = 'watched')",
	"post":       "(SELECT COUNT(*) FROM posts WHERE posts.film_id = films.id AND posts.is_active = TRUE)",
	"created_at": "films.created_at",
}

func (r *filmRepository) FindAll(ctx context.Context, page, limit int, sortBy, order string) ([]models.Film, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var films []models.Film
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Film{}).Where("films.is_active = ?", true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, "filmRepo.FindAll.Count")
	}

	// Apply sorting with validation
	expr, ok := sortExpressions[sortBy]
	if !ok {
		expr = sortExpressions["created_at"]
	}
	if !strings.EqualFold(order, "asc") {
		order = "DESC"
	} else {
		order = "ASC"
	}

	err := query.Order(expr + " " + order).
		Order("films.id DESC").
		Offset(offset(page, limit)).Limit(limit).
		Find(&films).Error
	if err != nil {
		return nil, 0, wrap(err, "filmRepo.FindAll")
	}

	return films, total, nil
}
