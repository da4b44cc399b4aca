package seed

import (
	"testing"

	"newsroom/internal/cache"
	"newsroom/internal/database"
	"newsroom/internal/models"
	"newsroom/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

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

func TestSeed(t *testing.T) {
	db := newTestDB(t)

	res, err := Seed(db, Options{Users: 5, Articles: 8, CommentsPerArticle: 3, Seed: 42, HashCost: bcrypt.MinCost})
	require.NoError(t, err)
	assert.Equal(t, Result{Users: 5, Articles: 8, Comments: 24}, res)

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 5)
	for _, u := range users {
		assert.NoError(t, validation.ValidateUsername(u.Username), u.Username)
		assert.NoError(t, validation.ValidateEmail(u.Email), u.Email)
		assert.GreaterOrEqual(t, u.Age, validation.MinimumAge)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(DemoPassword)))
	}

	var comments []models.Comment
	require.NoError(t, db.Preload("Article").Find(&comments).Error)
	require.Len(t, comments, 24)
	for _, c := range comments {
		require.NotNil(t, c.Article)
		assert.False(t, c.CreatedAt.Before(c.Article.CreatedAt))
	}
}

func TestSeed_RequiresUsers(t *testing.T) {
	_, err := Seed(newTestDB(t), Options{Articles: 1})
	assert.Error(t, err)
}

func TestDemoPasswordPassesPolicy(t *testing.T) {
	assert.NoError(t, validation.ValidatePassword(DemoPassword))
}

func TestClearAll(t *testing.T) {
	db := newTestDB(t)
	_, err := Seed(db, Options{Users: 2, Articles: 2, CommentsPerArticle: 1, Seed: 7, HashCost: bcrypt.MinCost})
	require.NoError(t, err)

	require.NoError(t, ClearAll(db))

	for _, model := range []any{&models.User{}, &models.Article{}, &models.Comment{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestUsernameFrom(t *testing.T) {
	assert.Equal(t, "oconnor_3", usernameFrom("O'Connor", 3))
	assert.Equal(t, "zo_2", usernameFrom("Zoë", 2))
	assert.Equal(t, "user_1", usernameFrom("'", 1))
}
