package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/pkg/jwt"
	"github.com/gin-gonic/gin"
)

const (
	// AdminSessionCookieName is the cookie used for admin web sessions
	AdminSessionCookieName = "admin_session"

	// AdminSessionContextKey stores the authenticated admin session in request context
	AdminSessionContextKey = "admin_session"

	bearerPrefix = "Bearer "
)

var (
	ErrAdminSessionNotFound = errors.New("admin session not found in context")
	ErrInvalidAdminSession  = errors.New("invalid admin session type")
)

// AdminSessionMiddleware authenticates the admin reporting surface. The token is
// read from the admin_session cookie, falling back to an Authorization bearer header.
// Only sessions with role ADMIN pass.
func AdminSessionMiddleware(tokenManager *jwt.TokenManager, cookieDomain string, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, fromCookie := sessionToken(c)
		if token == "" {
			_ = c.Error(fmt.Errorf("missing admin session token")) //nolint:errcheck
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := tokenManager.ValidateToken(token)
		if err != nil {
			_ = c.Error(fmt.Errorf("invalid admin session token: %w", err)) //nolint:errcheck
			if fromCookie {
				ClearAdminSessionCookie(c, cookieDomain, cookieSecure)
			}
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			}
			c.Abort()
			return
		}

		role := models.UserRole(claims.Role)
		if role != models.UserRoleAdmin {
			_ = c.Error(fmt.Errorf("role %q is not allowed on admin routes", claims.Role)) //nolint:errcheck
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		session := &models.AdminSession{
			AdminID: claims.Subject,
			Email:   claims.Email,
			Name:    claims.Name,
			Role:    role,
		}
		if claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Unix()
		}
		if claims.IssuedAt != nil {
			session.IssuedAt = claims.IssuedAt.Unix()
		}

		c.Set(AdminSessionContextKey, session)
		c.Next()
	}
}

// sessionToken returns the raw token and whether it came from the cookie
func sessionToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(AdminSessionCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), false
	}
	return "", false
}

func GetAdminSession(c *gin.Context) (*models.AdminSession, error) {
	val, exists := c.Get(AdminSessionContextKey)
	if !exists {
		return nil, ErrAdminSessionNotFound
	}

	session, ok := val.(*models.AdminSession)
	if !ok {
		return nil, ErrInvalidAdminSession
	}

	return session, nil
}

func ClearAdminSessionCookie(c *gin.Context, domain string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		AdminSessionCookieName,
		"",
		-1,
		"/",
		domain,
		secure,
		true,
	)
}
