package server

import (
	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Comment string `json:"comment" form:"comment"`
}

// GetComments handles GET /api/articles/:id/comments
// @Summary Comment view
// @Description The article, its comments oldest first, and a blank comment form
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} object{article=models.Article,comments=[]models.Comment,form=models.Form}
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	articleID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.commentService.ListComments(c.UserContext(), articleID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"article":  detail.Article,
		"comments": detail.Comments,
		"form":     models.CommentForm(),
	})
}

// CreateComment handles POST /api/articles/:id/comments
// @Summary Comment on an article
// @Description The article comes from the path and the caller becomes the author.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body object{comment=string} true "Comment"
// @Success 302
// @Failure 400 {object} object{error=string,fields=models.FieldErrors,form=models.Form,article=models.Article,comments=[]models.Comment}
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	articleID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	ctx := c.UserContext()
	_, err = s.commentService.CreateComment(ctx, service.CreateCommentInput{
		UserID:    currentUserID(c),
		ArticleID: articleID,
		Text:      req.Comment,
	})
	if err != nil {
		if !models.IsValidation(err) {
			return respondError(c, err)
		}
		detail, derr := s.commentService.ListComments(ctx, articleID)
		if derr != nil {
			return respondError(c, derr)
		}
		return respondFormError(c, err, models.CommentForm(),
			map[string]string{"comment": req.Comment},
			fiber.Map{"article": detail.Article, "comments": detail.Comments})
	}

	return c.Redirect(commentsPath(articleID))
}
