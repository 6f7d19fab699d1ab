package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// APISignupHandler registers a user over the JSON API
func APISignupHandler(c echo.Context) error {
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

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user":    user,
	})
}

// APILoginHandler authenticates and returns a token pair in the body
func APILoginHandler(c echo.Context) error {
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

	return c.JSON(http.StatusOK, map[string]interface{}{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user":    user,
	})
}

// APIRefreshHandler exchanges a refresh token for a new access token
func APIRefreshHandler(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil || req.Refresh == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Refresh token is required"})
	}

	cfg := getConfig(c)
	access, _, err := services.RefreshAccessToken(db.DB, cfg, req.Refresh)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"access": access})
}

// APILogoutHandler blacklists the submitted refresh token
func APILogoutHandler(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil || req.Refresh == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Refresh token is required"})
	}

	cfg := getConfig(c)
	if err := services.BlacklistRefreshToken(db.DB, cfg, req.Refresh); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid refresh token"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

// APIProfileHandler returns the token user's profile
func APIProfileHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}
