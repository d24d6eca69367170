package services

import (
	"context"
	"fmt"
	"strings"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/filmstate"
	"flicks-backend/internal/models"
	"flicks-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

const maxArtistName = 30

type FilmService interface {
	// Fetch returns the stored film for imdbID, importing it from the catalog
	// first when needed. created reports whether an import happened.
	Fetch(ctx context.Context, imdbID string) (film *models.Film, created bool, err error)
	Get(ctx context.Context, filmID uint) (*models.Film, error)
	Search(ctx context.Context, viewerID uint, query string) ([]models.CatalogSearchResult, error)
	List(ctx context.Context, viewerID uint, page, limit int, sortBy, order string) ([]models.FilmListItem, int64, error)
	Detail(ctx context.Context, filmID uint) (*models.FilmDetail, error)
	ListMarked(ctx context.Context, viewerID, userID uint, list models.FilmList, search string, page, limit int) ([]models.FilmListItem, int64, error)
	// ApplyAction moves a film between the user's lists and returns the lists it is in afterwards.
	ApplyAction(ctx context.Context, userID, filmID uint, action filmstate.Action) (filmstate.State, error)
	AddToWatched(ctx context.Context, userID, filmID uint) error
}

type filmService struct {
	films   repository.FilmRepository
	artists repository.ArtistRepository
	marks   repository.FilmMarkRepository
	posts   repository.PostRepository
	users   repository.UserRepository
	catalog CatalogClient
	tx      Transactor
	logger  *logrus.Logger
}

func NewFilmService(
	films repository.FilmRepository,
	artists repository.ArtistRepository,
	marks repository.FilmMarkRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
	catalog CatalogClient,
	tx Transactor,
	logger *logrus.Logger,
) FilmService {
	return &filmService{
		films:   films,
		artists: artists,
		marks:   marks,
		posts:   posts,
		users:   users,
		catalog: catalog,
		tx:      tx,
		logger:  logger,
	}
}

func (s *filmService) Fetch(ctx context.Context, imdbID string) (*models.Film, bool, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, false, apperrors.Validation("imdb_id is required")
	}

	existing, err := s.films.FindActiveByIMDBID(ctx, imdbID)
	if err != nil {
		return nil, false, internal("failed to check existing film", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	remote, err := s.catalog.Fetch(ctx, imdbID)
	if err != nil {
		s.logger.WithError(err).WithField("imdb_id", imdbID).Error("Catalog fetch failed")
		return nil, false, apperrors.Internal("failed to fetch film from catalog", err)
	}

	film := &models.Film{
		IMDBID:        remote.IMDBID,
		Name:          remote.Name,
		Plot:          remote.Plot,
		ContentRating: remote.ContentRating,
		Genres:        remote.Genres,
		Countries:     remote.Countries,
		Languages:     remote.Languages,
		Photo:         remote.Photo,
		Banner:        remote.Banner,
		Trailer:       remote.Trailer,
		Year:          remote.Year,
		IMDB:          remote.IMDB,
		Rotten:        remote.Rotten,
		Metacritic:    remote.Metacritic,
		Time:          remote.Time,
		IsActive:      true,
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		if film.Writers, err = s.resolveArtists(ctx, remote.Writers); err != nil {
			return err
		}
		if film.Directors, err = s.resolveArtists(ctx, remote.Directors); err != nil {
			return err
		}
		if film.Actors, err = s.resolveArtists(ctx, remote.Actors); err != nil {
			return err
		}
		return s.films.Create(ctx, film)
	})
	if err != nil {
		return nil, false, internal("failed to store film", err)
	}

	s.logger.WithFields(logrus.Fields{
		"film_id": film.ID,
		"imdb_id": film.IMDBID,
	}).Info("Film imported")
	return film, true, nil
}

func (s *filmService) resolveArtists(ctx context.Context, remote []models.CatalogArtist) ([]models.Artist, error) {
	artists := make([]models.Artist, 0, len(remote))
	for _, r := range remote {
		name := r.Name
		if runes := []rune(name); len(runes) > maxArtistName {
			name = string(runes[:maxArtistName])
		}
		artist, err := s.artists.FindOrCreate(ctx, models.Artist{IMDBID: r.IMDBID, Name: name, Photo: r.Photo, IsActive: true})
		if err != nil {
			return nil, err
		}
		artists = append(artists, *artist)
	}
	return artists, nil
}

func (s *filmService) Get(ctx context.Context, filmID uint) (*models.Film, error) {
	return s.activeFilm(ctx, filmID)
}

func (s *filmService) Search(ctx context.Context, viewerID uint, query string) ([]models.CatalogSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrSearchParam
	}

	results, err := s.catalog.Search(ctx, query)
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Error("Catalog search failed")
		return nil, apperrors.Internal("failed to search catalog", err)
	}
	if len(results) == 0 {
		return results, nil
	}

	imdbIDs := make([]string, 0, len(results))
	for _, r := range results {
		imdbIDs = append(imdbIDs, r.IMDBID)
	}
	local, err := s.films.FindActiveByIMDBIDs(ctx, imdbIDs)
	if err != nil {
		return nil, internal("failed to load films", err)
	}

	byIMDB := make(map[string]uint, len(local))
	filmIDs := make([]uint, 0, len(local))
	for _, f := range local {
		byIMDB[f.IMDBID] = f.ID
		filmIDs = append(filmIDs, f.ID)
	}

	counts, err := s.marks.CountByFilms(ctx, filmIDs, models.ListWatched)
	if err != nil {
		return nil, internal("failed to count watched", err)
	}
	states, err := s.marks.States(ctx, viewerID, filmIDs)
	if err != nil {
		return nil, internal("failed to load marks", err)
	}

	for i := range results {
		id, ok := byIMDB[results[i].IMDBID]
		if !ok {
			continue
		}
		results[i].WatchedCount = counts[id]
		results[i].IsWatched = states[id][models.ListWatched]
		results[i].IsWatchlist = states[id][models.ListWatchlist]
	}
	return results, nil
}

func (s *filmService) List(ctx context.Context, viewerID uint, page, limit int, sortBy, order string) ([]models.FilmListItem, int64, error) {
	page, limit = normalizePage(page, limit)

	films, total, err := s.films.FindAll(ctx, page, limit, sortBy, order)
	if err != nil {
		return nil, 0, internal("failed to list films", err)
	}
	items, err := s.listItems(ctx, viewerID, films)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *filmService) Detail(ctx context.Context, filmID uint) (*models.FilmDetail, error) {
	film, err := s.activeFilm(ctx, filmID)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ActiveByFilm(ctx, filmID)
	if err != nil {
		return nil, internal("failed to load posts", err)
	}

	detail := &models.FilmDetail{Film: *film}
	detail.RateAverage, detail.GenresAverage = averages(posts)

	counts := map[models.FilmList]*int64{
		models.ListWatched:   &detail.WatchedCount,
		models.ListWatchlist: &detail.WatchlistCount,
		models.ListFavorite:  &detail.FavedCount,
	}
	for list, dst := range counts {
		n, err := s.marks.CountByFilm(ctx, filmID, list)
		if err != nil {
			return nil, internal("failed to count marks", err)
		}
		*dst = n
	}
	return detail, nil
}

// averages returns the mean rate over rated posts and the mean of every genre
// score present in at least one post. Genres averaging zero are left out.
func averages(posts []models.Post) (float64, map[string]float64) {
	var rateSum float64
	var rated int
	sums := make(map[string]int)
	seen := make(map[string]int)

	for _, p := range posts {
		if p.Rate != nil {
			rateSum += *p.Rate
			rated++
		}
		for genre, value := range p.Genres {
			sums[genre] += value
			seen[genre]++
		}
	}

	genres := make(map[string]float64, len(sums))
	for genre, sum := range sums {
		if sum == 0 {
			continue
		}
		genres[genre] = float64(sum) / float64(seen[genre])
	}

	if rated == 0 {
		return 0, genres
	}
	return rateSum / float64(rated), genres
}

func (s *filmService) ListMarked(ctx context.Context, viewerID, userID uint, list models.FilmList, search string, page, limit int) ([]models.FilmListItem, int64, error) {
	if !list.Valid() {
		return nil, 0, apperrors.Validation("unknown film list")
	}
	if viewerID != userID {
		user, err := s.users.FindActiveByID(ctx, userID)
		if err != nil {
			return nil, 0, internal("failed to load user", err)
		}
		if user == nil {
			return nil, 0, apperrors.ErrUserNotFound
		}
	}
	// only the watched list is searchable
	if list != models.ListWatched {
		search = ""
	}

	page, limit = normalizePage(page, limit)
	films, total, err := s.marks.ListFilms(ctx, userID, list, search, page, limit)
	if err != nil {
		return nil, 0, internal("failed to list films", err)
	}
	items, err := s.listItems(ctx, viewerID, films)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *filmService) listItems(ctx context.Context, viewerID uint, films []models.Film) ([]models.FilmListItem, error) {
	ids := make([]uint, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}
	states, err := s.marks.States(ctx, viewerID, ids)
	if err != nil {
		return nil, internal("failed to load marks", err)
	}

	items := make([]models.FilmListItem, 0, len(films))
	for _, f := range films {
		items = append(items, models.FilmListItem{
			ID:          f.ID,
			Name:        f.Name,
			Photo:       f.Photo,
			Year:        f.Year,
			IMDB:        f.IMDB,
			IsWatched:   states[f.ID][models.ListWatched],
			IsWatchlist: states[f.ID][models.ListWatchlist],
		})
	}
	return items, nil
}

func (s *filmService) ApplyAction(ctx context.Context, userID, filmID uint, action filmstate.Action) (filmstate.State, error) {
	transition, ok := filmstate.For(action)
	if !ok {
		return nil, apperrors.Validation("unknown film action")
	}
	if _, err := s.activeFilm(ctx, filmID); err != nil {
		return nil, err
	}

	var next filmstate.State
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		current, err := s.marks.State(ctx, userID, filmID)
		if err != nil {
			return err
		}
		next = current.Apply(action)
		if !next.Valid() {
			return apperrors.Internal(fmt.Sprintf("%s from %v breaks the list rules", action, current), nil)
		}
		if err := s.marks.Apply(ctx, userID, filmID, transition); err != nil {
			return err
		}
		if action == filmstate.RemoveFromWatched {
			return s.posts.DeactivateByUserAndFilm(ctx, userID, filmID)
		}
		return nil
	})
	if err != nil {
		return nil, internal("failed to update film lists", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"film_id": filmID,
		"action":  action,
	}).Info("Film lists updated")
	return next, nil
}

func (s *filmService) AddToWatched(ctx context.Context, userID, filmID uint) error {
	_, err := s.ApplyAction(ctx, userID, filmID, filmstate.AddToWatched)
	return err
}

func (s *filmService) activeFilm(ctx context.Context, filmID uint) (*models.Film, error) {
	film, err := s.films.FindActiveByID(ctx, filmID)
	if err != nil {
		return nil, internal("failed to load film", err)
	}
	if film == nil {
		return nil, apperrors.ErrFilmNotFound
	}
	return film, nil
}
