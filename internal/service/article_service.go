// Package service holds the business rules that sit between HTTP handlers and repositories.
package service

import (
	"context"

	"newsroom/internal/models"
	"newsroom/internal/observability"
	"newsroom/internal/repository"
	"newsroom/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

type ArticleService struct {
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
}

type CreateArticleInput struct {
	AuthorID uint
	Title    string
	Body     string
}

type UpdateArticleInput struct {
	UserID    uint
	ArticleID uint
	Title     string
	Body      string
}

type DeleteArticleInput struct {
	UserID    uint
	ArticleID uint
}

func NewArticleService(
	articleRepo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
	}
}

// ListArticles returns all articles, filtered by a case-insensitive title match when search is set.
func (s *ArticleService) ListArticles(ctx context.Context, search string) ([]*models.Article, error) {
	return s.articleRepo.List(ctx, search)
}

// GetArticle returns the article with its comments, oldest comment first.
func (s *ArticleService) GetArticle(ctx context.Context, id uint) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ArticleDetail{Article: article, Comments: comments}, nil
}

// GetOwnedArticle loads the article and fails with FORBIDDEN unless userID wrote it.
// op names the attempted operation for metrics.
func (s *ArticleService) GetOwnedArticle(ctx context.Context, id, userID uint, op string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireAuthor(article, userID, op); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, in CreateArticleInput) (article *models.Article, err error) {
	ctx, end := observability.StartSpan(ctx, "ArticleService", "CreateArticle",
		attribute.Int64("user.id", int64(in.AuthorID)))
	defer func() { end(err) }()

	title, body, err := validateArticle(in.Title, in.Body)
	if err != nil {
		return nil, err
	}

	article = &models.Article{
		Title:    title,
		Body:     body,
		AuthorID: in.AuthorID,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	observability.ArticlesWritten.WithLabelValues("create").Inc()
	return article, nil
}

// UpdateArticle checks existence, then ownership, then input, in that order.
func (s *ArticleService) UpdateArticle(ctx context.Context, in UpdateArticleInput) (article *models.Article, err error) {
	ctx, end := observability.StartSpan(ctx, "ArticleService", "UpdateArticle",
		attribute.Int64("article.id", int64(in.ArticleID)))
	defer func() { end(err) }()

	article, err = s.GetOwnedArticle(ctx, in.ArticleID, in.UserID, "update")
	if err != nil {
		return nil, err
	}

	title, body, err := validateArticle(in.Title, in.Body)
	if err != nil {
		return nil, err
	}

	article.Title = title
	article.Body = body
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	observability.ArticlesWritten.WithLabelValues("update").Inc()
	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, in DeleteArticleInput) (err error) {
	ctx, end := observability.StartSpan(ctx, "ArticleService", "DeleteArticle",
		attribute.Int64("article.id", int64(in.ArticleID)))
	defer func() { end(err) }()

	if _, err := s.GetOwnedArticle(ctx, in.ArticleID, in.UserID, "delete"); err != nil {
		return err
	}
	if err := s.articleRepo.Delete(ctx, in.ArticleID); err != nil {
		return err
	}
	observability.ArticlesWritten.WithLabelValues("delete").Inc()
	return nil
}

func requireAuthor(article *models.Article, userID uint, op string) error {
	if article.AuthorID != userID {
		observability.OwnershipDenials.WithLabelValues(op).Inc()
		return models.NewForbiddenError("You can only modify your own articles")
	}
	return nil
}

func validateArticle(rawTitle, rawBody string) (string, string, error) {
	fields := models.FieldErrors{}
	title, err := validation.ValidateTitle(rawTitle)
	if err != nil {
		fields.Add("title", err.Error())
	}
	body, err := validation.ValidateBody(rawBody)
	if err != nil {
		fields.Add("body", err.Error())
	}
	if len(fields) > 0 {
		return "", "", models.NewFieldValidationError(fields)
	}
	return title, body, nil
}
