package server

import (
	"errors"
	"fmt"
	"strings"

	"newsroom/internal/middleware"
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	loginPath    = "/api/auth/login"
	articlesPath = "/api/articles"
)

func articlePath(id uint) string {
	return fmt.Sprintf("%s/%d", articlesPath, id)
}

func commentsPath(articleID uint) string {
	return fmt.Sprintf("%s/%d/comments", articlesPath, articleID)
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}

// parseBody decodes a JSON or form-encoded body into dst.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return errResponseWritten
	}
	return nil
}

// currentUserID returns the id stored by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}

// respondError writes err with the status its code maps to.
// Internal failures are logged here since their details never reach the client.
func respondError(c *fiber.Ctx, err error) error {
	status := models.StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			"path", c.Path(), "error", err)
	}
	return models.RespondWithError(c, status, err)
}

// respondFormError writes a validation or credential failure together with the
// form re-bound to the submitted values. extra is merged into the payload.
func respondFormError(c *fiber.Ctx, err error, form models.Form, values map[string]string, extra fiber.Map) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return respondError(c, err)
	}

	fields := appErr.Fields
	if len(fields) == 0 {
		fields = models.FieldErrors{"": {appErr.Message}}
	}

	body := fiber.Map{
		"error": appErr.Message,
		"code":  appErr.Code,
		"form":  form.Bind(values, fields),
	}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(models.StatusFor(err)).JSON(body)
}

// safeNext returns next when it is a same-site relative path, otherwise "".
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
