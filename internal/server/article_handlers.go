package server

import (
	"fmt"

	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type articleRequest struct {
	Title string `json:"title" form:"title"`
	Body  string `json:"body" form:"body"`
}

func (r articleRequest) values() map[string]string {
	return map[string]string{"title": r.Title, "body": r.Body}
}

// ListArticles handles GET /api/articles
// @Summary List articles
// @Description Newest first. search filters by a case-insensitive title match.
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param search query string false "Title search"
// @Success 200 {object} object{articles=[]models.Article,search=string}
// @Success 302
// @Router /articles [get]
func (s *Server) ListArticles(c *fiber.Ctx) error {
	search := c.Query("search")

	articles, err := s.articleService.ListArticles(c.UserContext(), search)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"articles": articles,
		"search":   search,
	})
}

// NewArticleForm handles GET /api/articles/new
// @Summary Blank article form
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{form=models.Form}
// @Router /articles/new [get]
func (s *Server) NewArticleForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"form": models.ArticleForm()})
}

// CreateArticle handles POST /api/articles
// @Summary Create an article
// @Description The caller becomes the author. Redirects to the new article.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,body=string} true "Article"
// @Success 302
// @Failure 400 {object} object{error=string,fields=models.FieldErrors,form=models.Form}
// @Router /articles [post]
func (s *Server) CreateArticle(c *fiber.Ctx) error {
	var req articleRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	article, err := s.articleService.CreateArticle(c.UserContext(), service.CreateArticleInput{
		AuthorID: currentUserID(c),
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		if models.IsValidation(err) {
			return respondFormError(c, err, models.ArticleForm(), req.values(), nil)
		}
		return respondError(c, err)
	}

	return c.Redirect(articlePath(article.ID))
}

// GetArticle handles GET /api/articles/:id
// @Summary Article detail
// @Description The article, its comments oldest first, and a blank comment form
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} object{article=models.Article,comments=[]models.Comment,comment_form=models.Form}
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{id} [get]
func (s *Server) GetArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.articleService.GetArticle(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"article":      detail.Article,
		"comments":     detail.Comments,
		"comment_form": models.CommentForm(),
	})
}

// EditArticleForm handles GET /api/articles/:id/edit
// @Summary Edit form
// @Description The article form pre-filled with current values. Author only.
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} object{article=models.Article,form=models.Form}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{id}/edit [get]
func (s *Server) EditArticleForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	article, err := s.articleService.GetOwnedArticle(c.UserContext(), id, currentUserID(c), "edit")
	if err != nil {
		return respondError(c, err)
	}

	values := articleRequest{Title: article.Title, Body: article.Body}.values()
	return c.JSON(fiber.Map{
		"article": article,
		"form":    models.ArticleForm().Bind(values, nil),
	})
}

// UpdateArticle handles PUT /api/articles/:id and POST /api/articles/:id/edit
// @Summary Update an article
// @Description Author only. Redirects to the article.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body object{title=string,body=string} true "Article"
// @Success 302
// @Failure 400 {object} object{error=string,fields=models.FieldErrors,form=models.Form}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{id} [put]
func (s *Server) UpdateArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// A missing or foreign article outranks a malformed body.
	if _, err := s.articleService.GetOwnedArticle(c.UserContext(), id, currentUserID(c), "update"); err != nil {
		return respondError(c, err)
	}

	var req articleRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	article, err := s.articleService.UpdateArticle(c.UserContext(), service.UpdateArticleInput{
		UserID:    currentUserID(c),
		ArticleID: id,
		Title:     req.Title,
		Body:      req.Body,
	})
	if err != nil {
		if models.IsValidation(err) {
			return respondFormError(c, err, models.ArticleForm(), req.values(), nil)
		}
		return respondError(c, err)
	}

	return c.Redirect(articlePath(article.ID))
}

// DeleteArticleConfirm handles GET /api/articles/:id/delete
// @Summary Delete confirmation
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} object{article=models.Article,confirm=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{id}/delete [get]
func (s *Server) DeleteArticleConfirm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	article, err := s.articleService.GetOwnedArticle(c.UserContext(), id, currentUserID(c), "delete")
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"article": article,
		"confirm": fmt.Sprintf("Are you sure you want to delete %q?", article.Title),
	})
}

// DeleteArticle handles DELETE /api/articles/:id and POST /api/articles/:id/delete
// @Summary Delete an article
// @Description Author only. Removes the article and its comments, then redirects to the list.
// @Tags articles
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 302
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{id} [delete]
func (s *Server) DeleteArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.articleService.DeleteArticle(c.UserContext(), service.DeleteArticleInput{
		UserID:    currentUserID(c),
		ArticleID: id,
	}); err != nil {
		return respondError(c, err)
	}

	return c.Redirect(articlesPath)
}
