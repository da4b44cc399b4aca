package repository

import (
	"context"
	"strings"

	"newsroom/internal/cache"
	"newsroom/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	// List returns every article, or those whose title contains search
	// case-insensitively when search is non-empty. Newest first.
	List(ctx context.Context, search string) ([]*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Omit("Author").Create(article).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", article.AuthorID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := cache.Aside(ctx, cache.ArticleKey(id), &article, cache.ArticleTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Author").First(&article, id).Error; err != nil {
			return notFoundOr(err, "Article", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, search string) ([]*models.Article, error) {
	articles := []*models.Article{}
	q := r.db.WithContext(ctx).Preload("Author")
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(search)+"%")
	}
	if err := q.Order("created_at DESC, id DESC").Find(&articles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return articles, nil
}

// Update writes title and body only; author and created_at are never touched.
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	res := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", article.ID).
		Updates(map[string]interface{}{
			"title": article.Title,
			"body":  article.Body,
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Article", article.ID)
	}
	cache.InvalidateArticle(ctx, article.ID)
	return nil
}

// Delete removes the article and its comments in one transaction.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Article{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return notFoundOr(err, "Article", id)
	}
	cache.InvalidateArticle(ctx, id)
	return nil
}
