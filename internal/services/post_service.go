package services

import (
	"context"
	"fmt"
	"sort"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/models"
	"flicks-backend/internal/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PostInput is what a user supplies when writing or editing a post. FilmID is
// ignored on update, where nil fields keep their stored value.
type PostInput struct {
	FilmID  uint
	Genres  map[string]int
	Rate    *float64
	Caption *string
	Quote   *string
}

type PostService interface {
	Create(ctx context.Context, user *models.User, in PostInput) (*models.Post, error)
	Update(ctx context.Context, user *models.User, postID uint, in PostInput) (*models.Post, error)
	Delete(ctx context.Context, user *models.User, postID uint) error
	Get(ctx context.Context, postID uint) (*models.Post, error)
	ListSelf(ctx context.Context, userID uint, page, limit int) ([]models.Post, int64, error)
	// ListByUser lists another user's posts; the user must be active.
	ListByUser(ctx context.Context, viewerID, userID uint, page, limit int) ([]models.Post, int64, error)
	Feed(ctx context.Context, userID uint, page, limit int) ([]models.Post, int64, error)
	ListByFilm(ctx context.Context, viewerID, filmID uint, page, limit int) ([]models.Post, int64, error)
}

type postService struct {
	posts  repository.PostRepository
	users  repository.UserRepository
	films  FilmService
	tx     Transactor
	logger *logrus.Logger
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, films FilmService, tx Transactor, logger *logrus.Logger) PostService {
	return &postService{
		posts:  posts,
		users:  users,
		films:  films,
		tx:     tx,
		logger: logger,
	}
}

// ValidateGenres checks keys against the fixed genre set and values against [0, MaxGenreValue].
func ValidateGenres(genres map[string]int) error {
	if len(genres) == 0 {
		return apperrors.ErrInvalidGenre
	}

	keys := make([]string, 0, len(genres))
	for k := range genres {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, genre := range keys {
		if !models.IsGenre(genre) {
			return apperrors.Validation(fmt.Sprintf("No genre called %s", genre))
		}
		if v := genres[genre]; v < 0 || v > models.MaxGenreValue {
			return apperrors.Validation(fmt.Sprintf("Invalid value for %s", genre))
		}
	}
	return nil
}

func validatePostInput(in PostInput) error {
	if err := ValidateGenres(in.Genres); err != nil {
		return err
	}
	return validateRate(in.Rate)
}

func validateRate(rate *float64) error {
	if rate != nil && (*rate < 0 || *rate > models.MaxRate) {
		return apperrors.ErrInvalidRate
	}
	return nil
}

func (s *postService) Create(ctx context.Context, user *models.User, in PostInput) (*models.Post, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}
	if _, err := s.films.Get(ctx, in.FilmID); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:   user.ID,
		FilmID:   in.FilmID,
		Genres:   in.Genres,
		Rate:     in.Rate,
		Caption:  in.Caption,
		Quote:    in.Quote,
		IsActive: true,
	}

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.posts.FindActiveByUserAndFilm(ctx, user.ID, in.FilmID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrPostExists
		}
		if err := s.posts.Create(ctx, post); err != nil {
			return err
		}
		// writing a post means the film was watched
		return s.films.AddToWatched(ctx, user.ID, in.FilmID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrPostExists
		}
		return nil, internal("failed to create post", err)
	}

	s.logger.WithFields(logrus.Fields{
		"post_id": post.ID,
		"user_id": user.ID,
		"film_id": in.FilmID,
	}).Info("Post created")
	return post, nil
}

func (s *postService) Update(ctx context.Context, user *models.User, postID uint, in PostInput) (*models.Post, error) {
	if in.Genres != nil {
		if err := ValidateGenres(in.Genres); err != nil {
			return nil, err
		}
	}
	if err := validateRate(in.Rate); err != nil {
		return nil, err
	}

	post, err := s.owned(ctx, user, postID)
	if err != nil {
		return nil, err
	}

	if in.Genres != nil {
		post.Genres = in.Genres
	}
	if in.Rate != nil {
		post.Rate = in.Rate
	}
	if in.Caption != nil {
		post.Caption = in.Caption
	}
	if in.Quote != nil {
		post.Quote = in.Quote
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, internal("failed to update post", err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, user *models.User, postID uint) error {
	post, err := s.owned(ctx, user, postID)
	if err != nil {
		return err
	}
	if err := s.posts.Deactivate(ctx, post.ID); err != nil {
		return internal("failed to delete post", err)
	}

	s.logger.WithFields(logrus.Fields{"post_id": post.ID, "user_id": user.ID}).Info("Post deleted")
	return nil
}

func (s *postService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.posts.FindActiveByID(ctx, postID)
	if err != nil {
		return nil, internal("failed to load post", err)
	}
	if post == nil {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}

// owned returns the user's active post or a not-found error, so foreign posts
// are indistinguishable from missing ones.
func (s *postService) owned(ctx context.Context, user *models.User, postID uint) (*models.Post, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != user.ID {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}

func (s *postService) ListSelf(ctx context.Context, userID uint, page, limit int) ([]models.Post, int64, error) {
	page, limit = normalizePage(page, limit)
	posts, total, err := s.posts.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, internal("failed to list posts", err)
	}
	return posts, total, nil
}

func (s *postService) ListByUser(ctx context.Context, viewerID, userID uint, page, limit int) ([]models.Post, int64, error) {
	if viewerID != userID {
		user, err := s.users.FindActiveByID(ctx, userID)
		if err != nil {
			return nil, 0, internal("failed to load user", err)
		}
		if user == nil {
			return nil, 0, apperrors.ErrUserNotFound
		}
	}
	return s.ListSelf(ctx, userID, page, limit)
}

func (s *postService) Feed(ctx context.Context, userID uint, page, limit int) ([]models.Post, int64, error) {
	page, limit = normalizePage(page, limit)
	posts, total, err := s.posts.Feed(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, internal("failed to load feed", err)
	}
	return posts, total, nil
}

func (s *postService) ListByFilm(ctx context.Context, viewerID, filmID uint, page, limit int) ([]models.Post, int64, error) {
	if _, err := s.films.Get(ctx, filmID); err != nil {
		return nil, 0, err
	}
	page, limit = normalizePage(page, limit)
	posts, total, err := s.posts.ListByFilm(ctx, viewerID, filmID, page, limit)
	if err != nil {
		return nil, 0, internal("failed to list posts", err)
	}
	return posts, total, nil
}
