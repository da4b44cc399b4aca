package service

import (
	"context"

	"newsroom/internal/models"
	"newsroom/internal/observability"
	"newsroom/internal/repository"
	"newsroom/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

type CreateCommentInput struct {
	UserID    uint
	ArticleID uint
	Text      string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	articleRepo repository.ArticleRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// ListComments resolves the article and returns it with its comments.
func (s *CommentService) ListComments(ctx context.Context, articleID uint) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return &models.ArticleDetail{Article: article, Comments: comments}, nil
}

// CreateComment attaches a comment by UserID to ArticleID. The article must
// exist; nothing is written otherwise.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(ctx, in.ArticleID); err != nil {
		return nil, err
	}

	text, err := validation.ValidateComment(in.Text)
	if err != nil {
		return nil, models.NewFieldValidationError(models.FieldErrors{"comment": {err.Error()}})
	}

	comment := &models.Comment{
		Text:      text,
		ArticleID: in.ArticleID,
		AuthorID:  in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.Inc()
	return comment, nil
}
