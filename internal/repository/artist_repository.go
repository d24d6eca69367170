package repository

import (
	"context"

	"flicks-backend/internal/database"
	"flicks-backend/internal/models"
)

type ArtistRepository interface {
	// FindOrCreate returns the artist with the given imdb id, creating it from
	// the supplied fields when absent. An existing artist is not updated.
	FindOrCreate(ctx context.Context, artist models.Artist) (*models.Artist, error)
}

type artistRepository struct {
	base
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{base: newBase(db)}
}

func (r *artistRepository) FindOrCreate(ctx context.Context, artist models.Artist) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var out models.Artist
	err := r.db.WithContext(ctx).
		Where(models.Artist{IMDBID: artist.IMDBID}).
		Attrs(models.Artist{Name: artist.Name, Photo: artist.Photo}).
		FirstOrCreate(&out).Error
	if err != nil {
		return nil, wrap(err, "artistRepo.FindOrCreate")
	}
	return &out, nil
}
