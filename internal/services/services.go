//go:generate mockgen -destination=../mocks/services_mock.go -package=mocks flicks-backend/internal/services OTPService,AuthService,FollowService,FilmService,PostService,ProfileService,TokenIssuer,PasswordHasher,SMSSender,CatalogClient,MediaStorage

package services

import (
	"context"

	"flicks-backend/internal/apperrors"
)

// Transactor runs fn inside one database transaction carried by ctx.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage clamps paging input the same way for every listing.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// internal wraps an unexpected collaborator failure, leaving domain errors untouched.
func internal(msg string, err error) error {
	if apperrors.KindOf(err) != apperrors.KindInternal {
		return err
	}
	return apperrors.Internal(msg, err)
}
