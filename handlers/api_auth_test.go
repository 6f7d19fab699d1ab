package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"lawyer_diary_go/models"
	"lawyer_diary_go/services"

	"github.com/stretchr/testify/assert"
)

func TestAPISignupHandler(t *testing.T) {
	database := setupTestDB(t)

	body := `{"username":"api_signup","email":"api_signup@example.com","password":"password123","confirm_password":"password123"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/jwt/signup", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")

	err := APISignupHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	database.Model(&models.User{}).Where("username = ?", "api_signup").Count(&count)
	assert.Equal(t, int64(1), count)

	// Signup logs the user in: both credentials come back in the body
	// and the access token already resolves to the new account.
	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload["access"])
	assert.NotEmpty(t, payload["refresh"])
	assert.Contains(t, payload, "user")

	user, err := services.ResolveAccessToken(database, testConfig(), payload["access"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "api_signup", user.Username)
}

func TestAPISignupHandlerValidation(t *testing.T) {
	setupTestDB(t)

	body := `{"username":"api_bad","email":"api_bad@example.com","password":"short1","confirm_password":"short1"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/jwt/signup", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")

	err := APISignupHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "password", payload["field"])
	assert.NotEmpty(t, payload["error"])
}

func TestAPILoginHandlerReturnsTokenPair(t *testing.T) {
	database := setupTestDB(t)
	createTestLawyer(t, database, "api_login")

	body := `{"username":"api_login","password":"password123"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/jwt/login", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")

	err := APILoginHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload["access"])
	assert.NotEmpty(t, payload["refresh"])
	assert.Contains(t, payload, "user")

	// The access token actually resolves to the user
	user, err := services.ResolveAccessToken(database, testConfig(), payload["access"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "api_login", user.Username)
}

func TestAPILoginHandlerInvalidCredentials(t *testing.T) {
	database := setupTestDB(t)
	createTestLawyer(t, database, "api_login_bad")

	body := `{"username":"api_login_bad","password":"nope"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/jwt/login", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")

	err := APILoginHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIRefreshHandler(t *testing.T) {
	database := setupTestDB(t)
	lawyer := createTestLawyer(t, database, "api_refresh")

	pair, err := services.IssueTokenPair(testConfig(), lawyer.ID)
	assert.NoError(t, err)

	body := `{"refresh":"` + pair.Refresh + `"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/jwt/refresh", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")

	err = APIRefreshHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload["access"])

	// An access token cannot be used as a refresh token
	body = `{"refresh":"` + pair.Access + `"}`
	_, c, rec = setupEcho(http.MethodPost, "/api/jwt/refresh", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")

	err = APIRefreshHandler(c)
	assert.NoError(t, err)
	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestAPIRefreshHandlerMissingToken(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodPost, "/api/jwt/refresh", strings.NewReader(`{}`))
	c.Request().Header.Set("Content-Type", "application/json")

	err := APIRefreshHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPILogoutHandlerBlacklistsToken(t *testing.T) {
	database := setupTestDB(t)
	lawyer := createTestLawyer(t, database, "api_logout")

	cfg := testConfig()
	pair, err := services.IssueTokenPair(cfg, lawyer.ID)
	assert.NoError(t, err)

	body := `{"refresh":"` + pair.Refresh + `"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/jwt/logout", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")

	err = APILogoutHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, _, err = services.RefreshAccessToken(database, cfg, pair.Refresh)
	assert.Error(t, err)
}

func TestAPILogoutHandlerGarbageToken(t *testing.T) {
	setupTestDB(t)

	body := `{"refresh":"not-a-token"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/jwt/logout", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")

	err := APILogoutHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIProfileHandler(t *testing.T) {
	database := setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/jwt/profile", nil)
	err := APIProfileHandler(c)
	assert.Error(t, err)

	lawyer := createTestLawyer(t, database, "api_profile")
	_, c, rec = setupEcho(http.MethodGet, "/api/jwt/profile", nil)
	actAsUser(c, lawyer)

	err = APIProfileHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	user := payload["user"].(map[string]interface{})
	assert.Equal(t, "api_profile", user["username"])
	assert.NotContains(t, user, "password")
}
