package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newsroom/internal/cache"
	"newsroom/internal/middleware"
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "newsroom-api"
	tokenAudience = "newsroom-client"
	tokenTTL      = 7 * 24 * time.Hour
	sessionCookie = "session_token"
)

var errNoSession = errors.New("no valid session")

// session is the authenticated caller resolved from a token.
type session struct {
	user      *models.User
	jti       string
	expiresAt time.Time
}

// AuthRequired returns the authentication middleware.
// Callers without a valid session are redirected to the login entry point
// with the requested URL in next.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := s.authenticate(c)
		if err != nil {
			if !errors.Is(err, errNoSession) {
				return respondError(c, err)
			}
			return c.Redirect(loginPath + "?next=" + url.QueryEscape(c.OriginalURL()))
		}

		c.Locals("userID", sess.user.ID)
		c.Locals("user", sess.user)
		c.Locals("jti", sess.jti)
		c.Locals("tokenExpiresAt", sess.expiresAt)
		// Sync to UserContext for logging and downstream services
		c.SetUserContext(middleware.WithUserID(c.UserContext(), sess.user.ID))

		return c.Next()
	}
}

// authenticate resolves the caller from a Bearer token or the session cookie.
// It returns errNoSession for any missing, invalid, revoked or orphaned token.
func (s *Server) authenticate(c *fiber.Ctx) (*session, error) {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return nil, errNoSession
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, errNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errNoSession
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errNoSession
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, errNoSession
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errNoSession
	}

	jti, _ := claims["jti"].(string)
	if jti != "" && s.redis != nil {
		revoked, err := s.redis.Exists(c.UserContext(), cache.BlacklistKey(jti)).Result()
		if err == nil && revoked > 0 {
			return nil, errNoSession
		}
	}

	user, err := s.userService.GetUserByID(c.UserContext(), uint(userID))
	if err != nil {
		if models.IsNotFound(err) {
			return nil, errNoSession
		}
		return nil, err
	}

	return &session{user: user, jti: jti, expiresAt: exp.Time}, nil
}

func tokenFromRequest(c *fiber.Ctx) string {
	if parts := strings.Fields(c.Get(fiber.HeaderAuthorization)); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return c.Cookies(sessionCookie)
}

// generateToken creates a signed JWT for user and returns it with its expiry.
func (s *Server) generateToken(user *models.User) (string, time.Time, error) {
	if s.config.JWTSecret == "" {
		return "", time.Time{}, fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      expiresAt.Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// generateJTI creates a unique JWT ID used as the revocation key.
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// revokeToken blacklists jti until the token would have expired anyway.
func (s *Server) revokeToken(c *fiber.Ctx, jti string, ttl time.Duration) error {
	if s.redis == nil {
		middleware.Logger.WarnContext(c.UserContext(), "redis unavailable, token not revoked", "jti", jti)
		return nil
	}
	return s.redis.Set(c.UserContext(), cache.BlacklistKey(jti), "1", ttl).Err()
}
