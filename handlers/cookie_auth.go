package handlers

import (
	"lawyer_diary_go/config"
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

func newTokenCookie(cfg *config.Config, name, value string, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   cfg.Environment != "development",
		SameSite: http.SameSiteLaxMode,
	}
}

// setAuthCookies installs the token pair plus the JS-readable marker.
// Only the marker is readable by scripts.
func setAuthCookies(c echo.Context, cfg *config.Config, pair *services.TokenPair) {
	accessMaxAge := int(cfg.AccessTokenTTL.Seconds())
	refreshMaxAge := int(cfg.RefreshTokenTTL.Seconds())

	c.SetCookie(newTokenCookie(cfg, middleware.AccessTokenCookieName, pair.Access, accessMaxAge, true))
	c.SetCookie(newTokenCookie(cfg, middleware.RefreshTokenCookieName, pair.Refresh, refreshMaxAge, true))
	c.SetCookie(newTokenCookie(cfg, middleware.AuthMarkerCookieName, "true", accessMaxAge, false))
}

func clearAuthCookies(c echo.Context, cfg *config.Config) {
	c.SetCookie(newTokenCookie(cfg, middleware.AccessTokenCookieName, "", -1, true))
	c.SetCookie(newTokenCookie(cfg, middleware.RefreshTokenCookieName, "", -1, true))
	c.SetCookie(newTokenCookie(cfg, middleware.AuthMarkerCookieName, "", -1, false))
}

// CookieSignupHandler registers a user and logs them in immediately by
// delivering the token pair as cookies.
func CookieSignupHandler(c echo.Context) error {
	var input services.SignupInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	user, err := services.RegisterUser(db.DB, input)
	if err != nil {
		return serviceError(c, err)
	}

	cfg := getConfig(c)
	pair, err := services.IssueTokenPair(cfg, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to issue tokens")
	}

	setAuthCookies(c, cfg, pair)
	return c.JSON(http.StatusCreated, map[string]interface{}{"user": user})
}

// CookieLoginHandler authenticates and delivers the token pair as
// cookies instead of in the response body.
func CookieLoginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	user, err := services.AuthenticateUser(db.DB, req.Username, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	cfg := getConfig(c)
	pair, err := services.IssueTokenPair(cfg, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to issue tokens")
	}

	setAuthCookies(c, cfg, pair)
	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

// CookieRefreshHandler rotates the access token using the refresh
// cookie and resets the access and marker cookies.
func CookieRefreshHandler(c echo.Context) error {
	cookie, err := c.Cookie(middleware.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Refresh token not found"})
	}

	cfg := getConfig(c)
	access, user, err := services.RefreshAccessToken(db.DB, cfg, cookie.Value)
	if err != nil {
		clearAuthCookies(c, cfg)
		return serviceError(c, err)
	}

	accessMaxAge := int(cfg.AccessTokenTTL.Seconds())
	c.SetCookie(newTokenCookie(cfg, middleware.AccessTokenCookieName, access, accessMaxAge, true))
	c.SetCookie(newTokenCookie(cfg, middleware.AuthMarkerCookieName, "true", accessMaxAge, false))

	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

// CookieLogoutHandler blacklists the refresh token when present and
// clears all auth cookies. Logout always succeeds for the client.
func CookieLogoutHandler(c echo.Context) error {
	cfg := getConfig(c)

	if cookie, err := c.Cookie(middleware.RefreshTokenCookieName); err == nil && cookie.Value != "" {
		if err := services.BlacklistRefreshToken(db.DB, cfg, cookie.Value); err != nil {
			log.Printf("Failed to blacklist refresh token on logout: %v", err)
		}
	}

	clearAuthCookies(c, cfg)
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

// AuthStatusHandler reports whether the request carries a valid access
// token. It never returns an error status.
func AuthStatusHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		refreshAvailable := false
		if cookie, err := c.Cookie(middleware.RefreshTokenCookieName); err == nil && cookie.Value != "" {
			refreshAvailable = true
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"authenticated":     false,
			"refresh_available": refreshAvailable,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          user,
	})
}
