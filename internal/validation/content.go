package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"newsroom/internal/models"
)

// ValidateTitle trims and checks an article title.
func ValidateTitle(title string) (string, error) {
	return boundedText(title, models.MaxTitleLength)
}

// ValidateBody trims and checks an article body.
func ValidateBody(body string) (string, error) {
	return boundedText(body, 0)
}

// ValidateComment trims and checks comment text.
func ValidateComment(text string) (string, error) {
	return boundedText(text, models.MaxCommentLength)
}

// boundedText counts runes, not bytes. max <= 0 means unbounded.
func boundedText(s string, max int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrRequired
	}
	if max > 0 {
		if n := utf8.RuneCountInString(s); n > max {
			return s, fmt.Errorf("Ensure this value has at most %d characters (it has %d).", max, n)
		}
	}
	return s, nil
}
