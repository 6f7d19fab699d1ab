package middleware

import (
	"lawyer_diary_go/config"
	"lawyer_diary_go/db"
	"lawyer_diary_go/services"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// AccessTokenCookieName is the cookie carrying the JWT access token
	AccessTokenCookieName = "access_token"
	// RefreshTokenCookieName is the cookie carrying the JWT refresh token
	RefreshTokenCookieName = "refresh_token"
	// AuthMarkerCookieName is the JS-readable logged-in marker
	AuthMarkerCookieName = "is_authenticated"
)

// extractAccessToken finds the raw access token for a request. The
// cookie wins over the Authorization header so browser clients stay
// consistent after a cookie refresh.
func extractAccessToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// ResolveToken attaches the token user to the context when a valid
// access token is present. Missing, expired or malformed tokens leave
// the request anonymous; they never abort here.
func ResolveToken(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractAccessToken(c)
			if raw == "" {
				return next(c)
			}

			user, err := services.ResolveAccessToken(db.DB, cfg, raw)
			if err != nil {
				return next(c)
			}

			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// RequireToken rejects requests that ResolveToken left anonymous.
func RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if GetCurrentUser(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}
