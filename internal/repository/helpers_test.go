package repository

import (
	"context"
	"testing"
	"time"

	"flicks-backend/internal/config"
	"flicks-backend/internal/database"
	"flicks-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema. A single
// connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(gdb))
	return database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
}

func seedUser(t *testing.T, db *database.Database, username, phone string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Phone: phone, PasswordHash: "hash", IsActive: true}
	require.NoError(t, db.WithContext(context.Background()).Create(user).Error)
	return user
}

func seedProfile(t *testing.T, db *database.Database, userID uint, name string) {
	t.Helper()

	profile := &models.Profile{UserID: userID, Name: name, IsActive: true}
	require.NoError(t, db.WithContext(context.Background()).Create(profile).Error)
}

func seedFilm(t *testing.T, db *database.Database, imdbID, name string) *models.Film {
	t.Helper()

	film := &models.Film{IMDBID: imdbID, Name: name, IsActive: true}
	require.NoError(t, db.WithContext(context.Background()).Create(film).Error)
	return film
}

func deactivateUser(t *testing.T, db *database.Database, userID uint) {
	t.Helper()

	err := db.WithContext(context.Background()).Model(&models.User{}).
		Where("id = ?", userID).Update("is_active", false).Error
	require.NoError(t, err)
}

func strPtr(s string) *string { return &s }
