package service

import (
	"context"
	"strings"
	"testing"

	"newsroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing article is not found and nothing is persisted", func(t *testing.T) {
		t.Parallel()
		articles := noopArticleRepo()
		articles.getByIDFn = func(_ context.Context, id uint) (*models.Article, error) {
			return nil, models.NewNotFoundError("Article", id)
		}
		comments := noopCommentRepo()
		created := false
		comments.createFn = func(_ context.Context, _ *models.Comment) error {
			created = true
			return nil
		}
		svc := NewCommentService(comments, articles)

		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, ArticleID: 99, Text: "hi"})
		assert.True(t, models.IsNotFound(err))
		assert.False(t, created)
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopArticleRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, ArticleID: 1, Text: "   "})
		appErr := assertValidationError(t, err)
		assert.Contains(t, appErr.Fields, "comment")
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopArticleRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, ArticleID: 1, Text: strings.Repeat("x", 1001)})
		assertValidationError(t, err)
	})

	t.Run("binds article and author", func(t *testing.T) {
		t.Parallel()
		var saved *models.Comment
		comments := noopCommentRepo()
		comments.createFn = func(_ context.Context, c *models.Comment) error {
			c.ID = 42
			saved = c
			return nil
		}
		svc := NewCommentService(comments, noopArticleRepo())

		comment, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 5, ArticleID: 3, Text: "nice!"})
		require.NoError(t, err)
		assert.Equal(t, uint(42), comment.ID)
		require.NotNil(t, saved)
		assert.Equal(t, uint(3), saved.ArticleID)
		assert.Equal(t, uint(5), saved.AuthorID)
		assert.Equal(t, "nice!", saved.Text)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	t.Parallel()

	articles := noopArticleRepo()
	articles.getByIDFn = func(_ context.Context, id uint) (*models.Article, error) {
		return nil, models.NewNotFoundError("Article", id)
	}
	svc := NewCommentService(noopCommentRepo(), articles)

	_, err := svc.ListComments(context.Background(), 1)
	assert.True(t, models.IsNotFound(err))
}
