package handlers

import (
	"fmt"
	"io"
	"lawyer_diary_go/config"
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/models"
	"lawyer_diary_go/services"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:mem_%s?mode=memory&cache=shared", uuid.New().String())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.BlacklistedToken{},
		&models.Court{},
		&models.Client{},
		&models.Case{},
		&models.Hearing{},
		&models.Document{},
		&models.TaskReminder{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.DB = testDB
	return testDB
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:     "development",
		Timezone:        "UTC",
		JWTSecret:       "test-secret-with-enough-length-0123456789",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		EmailTestMode:   true,
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", testConfig())
	return e, c, rec
}

func createTestLawyer(t *testing.T, database *gorm.DB, username string) *models.User {
	hash, err := services.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		IsActive: true,
	}
	if err := database.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestCourt(t *testing.T, database *gorm.DB) *models.Court {
	court := &models.Court{
		Name:      "Handler Test Court " + uuid.New().String()[:8],
		CourtType: models.CourtTypeDistrict,
		Location:  "Delhi",
		State:     "Delhi",
	}
	if err := database.Create(court).Error; err != nil {
		t.Fatalf("failed to create court: %v", err)
	}
	return court
}

func createTestClient(t *testing.T, database *gorm.DB, lawyerID, name string) *models.Client {
	client := &models.Client{
		LawyerID: lawyerID,
		Name:     name,
		Phone:    "9876543210",
		IsActive: true,
	}
	if err := database.Create(client).Error; err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func createTestCase(t *testing.T, database *gorm.DB, lawyerID, clientID, courtID, caseNumber string) *models.Case {
	caseRecord := &models.Case{
		LawyerID:   lawyerID,
		ClientID:   clientID,
		CourtID:    courtID,
		CaseNumber: caseNumber,
		CaseTitle:  "State vs Example",
		CaseType:   models.CaseTypeCivil,
		FilingDate: time.Now().AddDate(0, -1, 0),
	}
	if err := database.Create(caseRecord).Error; err != nil {
		t.Fatalf("failed to create case: %v", err)
	}
	return caseRecord
}

// actAsUser injects the user the way the token middleware would.
func actAsUser(c echo.Context, user *models.User) {
	c.Set(middleware.ContextKeyUser, user)
}
