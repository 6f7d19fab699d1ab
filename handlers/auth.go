package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func errorFragment(message string) string {
	return `<div class="alert alert-danger" role="alert">` + message + `</div>`
}

// SignupPostHandler handles the signup form submission
func SignupPostHandler(c echo.Context) error {
	input := services.SignupInput{
		Username:        strings.TrimSpace(c.FormValue("username")),
		Email:           strings.TrimSpace(c.FormValue("email")),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
	}

	_, err := services.RegisterUser(db.DB, input)
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			if c.Request().Header.Get("HX-Request") == "true" {
				return c.HTML(http.StatusOK, errorFragment(ve.Message))
			}
			return c.Redirect(http.StatusSeeOther, "/signup")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create account")
	}

	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", "/login")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginPostHandler handles the login form submission
func LoginPostHandler(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	if username == "" || password == "" {
		if c.Request().Header.Get("HX-Request") == "true" {
			return c.HTML(http.StatusOK, errorFragment("Username and password are required"))
		}
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	user, err := services.AuthenticateUser(db.DB, username, password)
	if err != nil {
		if c.Request().Header.Get("HX-Request") == "true" {
			return c.HTML(http.StatusOK, errorFragment("Invalid username or password"))
		}
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	cfg := getConfig(c)
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(services.DefaultSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)

	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", "/dashboard")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// LogoutHandler handles user logout
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		services.DeleteSession(db.DB, cookie.Value)
	}

	cfg := getConfig(c)
	clearCookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(clearCookie)

	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", "/login")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// GetCurrentUserHandler returns the current user info as JSON
func GetCurrentUserHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return c.JSON(http.StatusOK, user)
}
