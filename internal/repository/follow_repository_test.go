package repository

import (
	"context"
	"testing"

	"flicks-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FollowRepository_AddIsMirroredAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "+989120000001")
	bob := seedUser(t, db, "bob", "+989120000002")

	require.NoError(t, repo.Add(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Add(ctx, alice.ID, bob.ID))

	var followings, followers int64
	require.NoError(t, db.Model(&models.UserFollowing{}).Where("user_id = ? AND following_id = ?", alice.ID, bob.ID).Count(&followings).Error)
	require.NoError(t, db.Model(&models.UserFollower{}).Where("user_id = ? AND follower_id = ?", bob.ID, alice.ID).Count(&followers).Error)
	assert.Equal(t, int64(1), followings)
	assert.Equal(t, int64(1), followers)

	following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func Test_FollowRepository_AddWritesOneDirection(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "+989120000001")
	bob := seedUser(t, db, "bob", "+989120000002")

	require.NoError(t, repo.Add(ctx, alice.ID, bob.ID))

	followers, total, err := repo.Followers(ctx, bob.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].ID)

	_, total, err = repo.Followings(ctx, bob.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, total, err = repo.Followers(ctx, alice.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, repo.Remove(ctx, alice.ID, bob.ID))
	var edges int64
	require.NoError(t, db.Model(&models.UserFollowing{}).Count(&edges).Error)
	assert.Zero(t, edges, "unfollow leaves no edge behind")
}

func Test_FollowRepository_Remove(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "+989120000001")
	bob := seedUser(t, db, "bob", "+989120000002")

	require.NoError(t, repo.Add(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Remove(ctx, alice.ID, bob.ID))
	// removing a missing edge is not an error
	require.NoError(t, repo.Remove(ctx, alice.ID, bob.ID))

	var edges int64
	require.NoError(t, db.Model(&models.UserFollower{}).Count(&edges).Error)
	assert.Zero(t, edges)
	require.NoError(t, db.Model(&models.UserFollowing{}).Count(&edges).Error)
	assert.Zero(t, edges)
}

func Test_FollowRepository_ListsAndCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	star := seedUser(t, db, "star", "+989120000001")
	fan1 := seedUser(t, db, "fan_one", "+989120000002")
	seedProfile(t, db, fan1.ID, "First Fan")
	fan2 := seedUser(t, db, "fan_two", "+989120000003")
	gone := seedUser(t, db, "gone", "+989120000004")

	for _, u := range []uint{fan1.ID, fan2.ID, gone.ID} {
		require.NoError(t, repo.Add(ctx, u, star.ID))
	}
	require.NoError(t, repo.Add(ctx, star.ID, fan2.ID))
	deactivateUser(t, db, gone.ID)

	followers, total, err := repo.Followers(ctx, star.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, followers, 2)

	followers, total, err = repo.Followers(ctx, star.ID, "first", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, followers, 1)
	assert.Equal(t, fan1.ID, followers[0].ID)
	assert.Equal(t, "First Fan", followers[0].Name)

	followings, total, err := repo.Followings(ctx, star.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, followings, 1)
	assert.Equal(t, fan2.ID, followings[0].ID)

	count, err := repo.CountFollowers(ctx, star.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountFollowings(ctx, star.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	among, err := repo.FollowedAmong(ctx, star.ID, []uint{fan1.ID, fan2.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint]bool{fan2.ID: true}, among)
}
