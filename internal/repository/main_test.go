package repository

import (
	"fmt"
	"testing"
	"time"

	"newsroom/internal/cache"
	"newsroom/internal/database"
	"newsroom/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB returns a migrated in-memory SQLite database with caching disabled.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cache.SetClient(nil)
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Account: models.Account{Username: username, Email: username + "@example.com", Password: "hash"},
		Profile: models.Profile{Age: 30},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createArticle inserts an article with an explicit creation time so ordering is deterministic.
func createArticle(t *testing.T, db *gorm.DB, author *models.User, title string, createdAt time.Time) *models.Article {
	t.Helper()
	article := &models.Article{Title: title, Body: fmt.Sprintf("body of %s", title), AuthorID: author.ID, CreatedAt: createdAt}
	require.NoError(t, db.Omit("Author").Create(article).Error)
	return article
}
