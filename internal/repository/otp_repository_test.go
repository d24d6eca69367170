package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OTPRepository_FindOrCreateByPhone(t *testing.T) {
	db := newTestDB(t)
	repo := NewOTPRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreateByPhone(ctx, "+989121111111")
	require.NoError(t, err)
	second, err := repo.FindOrCreateByPhone(ctx, "+989121111111")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	found, err := repo.FindActiveByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "+989121111111", found.Phone)

	missing, err := repo.FindActiveByID(ctx, first.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
