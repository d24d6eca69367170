package repository

import (
	"context"
	"strings"

	"flicks-backend/internal/database"
	"flicks-backend/internal/filmstate"
	"flicks-backend/internal/models"

	"gorm.io/gorm/clause"
)

// FilmMarkRepository stores the watched/watchlist/favorite lists as
// (user, film, list) rows.
type FilmMarkRepository interface {
	// Apply sets and clears marks for one (user, film) in a single transaction.
	Apply(ctx context.Context, userID, filmID uint, t filmstate.Transition) error
	State(ctx context.Context, userID, filmID uint) (filmstate.State, error)
	// States returns the state of every film in filmIDs that has at least one mark.
	States(ctx context.Context, userID uint, filmIDs []uint) (map[uint]filmstate.State, error)
	ListFilms(ctx context.Context, userID uint, list models.FilmList, search string, page, limit int) ([]models.Film, int64, error)
	CountByFilm(ctx context.Context, filmID uint, list models.FilmList) (int64, error)
	CountByFilms(ctx context.Context, filmIDs []uint, list models.FilmList) (map[uint]int64, error)
	CountByUser(ctx context.Context, userID uint, list models.FilmList) (int64, error)
}

type filmMarkRepository struct {
	base
}

func NewFilmMarkRepository(db *database.Database) FilmMarkRepository {
	return &filmMarkRepository{base: newBase(db)}
}

func (r *filmMarkRepository) Apply(ctx context.Context, userID, filmID uint, t filmstate.Transition) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		ctx, cancel := r.withTimeout(ctx)
		defer cancel()

		db := r.db.WithContext(ctx)
		if len(t.Clear) > 0 {
			err := db.Where("user_id = ? AND film_id = ? AND list IN ?", userID, filmID, t.Clear).
				Delete(&models.FilmMark{}).Error
			if err != nil {
				return wrap(err, "filmMarkRepo.Apply.Clear")
			}
		}
		for _, list := range t.Set {
			err := db.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.FilmMark{UserID: userID, FilmID: filmID, List: list}).Error
			if err != nil {
				return wrap(err, "filmMarkRepo.Apply.Set")
			}
		}
		return nil
	})
}

func (r *filmMarkRepository) State(ctx context.Context, userID, filmID uint) (filmstate.State, error) {
	states, err := r.States(ctx, userID, []uint{filmID})
	if err != nil {
		return nil, err
	}
	if s, ok := states[filmID]; ok {
		return s, nil
	}
	return filmstate.State{}, nil
}

func (r *filmMarkRepository) States(ctx context.Context, userID uint, filmIDs []uint) (map[uint]filmstate.State, error) {
	out := make(map[uint]filmstate.State)
	if len(filmIDs) == 0 {
		return out, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var marks []models.FilmMark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND film_id IN ?", userID, filmIDs).
		Find(&marks).Error
	if err != nil {
		return nil, wrap(err, "filmMarkRepo.States")
	}
	for _, m := range marks {
		if out[m.FilmID] == nil {
			out[m.FilmID] = filmstate.State{}
		}
		out[m.FilmID][m.List] = true
	}
	return out, nil
}

func (r *filmMarkRepository) ListFilms(ctx context.Context, userID uint, list models.FilmList, search string, page, limit int) ([]models.Film, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Film{}).
		Joins("JOIN film_marks ON film_marks.film_id = films.id").
		Where("film_marks.user_id = ? AND film_marks.list = ?", userID, list).
		Where("films.is_active = ?", true)
	if search != "" {
		query = query.Where("LOWER(films.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, "filmMarkRepo.ListFilms.Count")
	}

	var films []models.Film
	err := query.Select("films.*").
		Order("film_marks.created_at DESC").
		Offset(offset(page, limit)).Limit(limit).
		Find(&films).Error
	if err != nil {
		return nil, 0, wrap(err, "filmMarkRepo.ListFilms")
	}
	return films, total, nil
}

func (r *filmMarkRepository) CountByFilm(ctx context.Context, filmID uint, list models.FilmList) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.FilmMark{}).
		Joins("JOIN users ON users.id = film_marks.user_id").
		Where("film_marks.film_id = ? AND film_marks.list = ? AND users.is_active = ?", filmID, list, true).
		Count(&total).Error
	if err != nil {
		return 0, wrap(err, "filmMarkRepo.CountByFilm")
	}
	return total, nil
}

func (r *filmMarkRepository) CountByFilms(ctx context.Context, filmIDs []uint, list models.FilmList) (map[uint]int64, error) {
	out := make(map[uint]int64, len(filmIDs))
	if len(filmIDs) == 0 {
		return out, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	type row struct {
		FilmID uint
		Total  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.FilmMark{}).
		Select("film_marks.film_id AS film_id, COUNT(*) AS total").
		Joins("JOIN users ON users.id = film_marks.user_id").
		Where("film_marks.film_id IN ? AND film_marks.list = ? AND users.is_active = ?", filmIDs, list, true).
		Group("film_marks.film_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err, "filmMarkRepo.CountByFilms")
	}
	for _, r := range rows {
		out[r.FilmID] = r.Total
	}
	return out, nil
}

func (r *filmMarkRepository) CountByUser(ctx context.Context, userID uint, list models.FilmList) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.FilmMark{}).
		Joins("JOIN films ON films.id = film_marks.film_id").
		Where("film_marks.user_id = ? AND film_marks.list = ? AND films.is_active = ?", userID, list, true).
		Count(&total).Error
	if err != nil {
		return 0, wrap(err, "filmMarkRepo.CountByUser")
	}
	return total, nil
}
