package handlers

import (
	"fmt"
	"net/http"

	"lawyer_diary_go/middleware"

	"github.com/labstack/echo/v4"
)

// The web surface is intentionally minimal: bare forms that post to the
// session endpoints, with HTMX swapping validation fragments in place.
// All diary screens are driven by the JSON API.

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Lawyer Diary</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body class="bg-light">
<div class="container py-5" style="max-width: 480px">
%s
</div>
</body>
</html>`

const loginForm = `<h1 class="h3 mb-4">Sign in</h1>
<div id="form-errors"></div>
<form hx-post="/login" hx-target="#form-errors" hx-swap="innerHTML">
  <div class="mb-3">
    <label class="form-label" for="username">Username</label>
    <input class="form-control" id="username" name="username" required>
  </div>
  <div class="mb-3">
    <label class="form-label" for="password">Password</label>
    <input class="form-control" id="password" name="password" type="password" required>
  </div>
  <button class="btn btn-primary w-100" type="submit">Sign in</button>
</form>
<p class="mt-3 text-center"><a href="/signup">Create an account</a></p>`

const signupForm = `<h1 class="h3 mb-4">Create account</h1>
<div id="form-errors"></div>
<form hx-post="/signup" hx-target="#form-errors" hx-swap="innerHTML">
  <div class="mb-3">
    <label class="form-label" for="username">Username</label>
    <input class="form-control" id="username" name="username" required>
  </div>
  <div class="mb-3">
    <label class="form-label" for="email">Email</label>
    <input class="form-control" id="email" name="email" type="email" required>
  </div>
  <div class="mb-3">
    <label class="form-label" for="password">Password</label>
    <input class="form-control" id="password" name="password" type="password" required>
  </div>
  <div class="mb-3">
    <label class="form-label" for="confirm_password">Confirm password</label>
    <input class="form-control" id="confirm_password" name="confirm_password" type="password" required>
  </div>
  <button class="btn btn-primary w-100" type="submit">Sign up</button>
</form>
<p class="mt-3 text-center"><a href="/login">Already have an account?</a></p>`

func renderPage(c echo.Context, body string) error {
	return c.HTML(http.StatusOK, fmt.Sprintf(pageShell, body))
}

// HomeHandler redirects to the dashboard for signed-in users, otherwise
// to the login page.
func HomeHandler(c echo.Context) error {
	if _, err := c.Cookie(middleware.SessionCookieName); err == nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginPageHandler renders the login form
func LoginPageHandler(c echo.Context) error {
	return renderPage(c, loginForm)
}

// SignupPageHandler renders the signup form
func SignupPageHandler(c echo.Context) error {
	return renderPage(c, signupForm)
}
