package services

import (
	"fmt"
	"lawyer_diary_go/config"
	"lawyer_diary_go/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB initializes an in-memory SQLite database for testing
func setupTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:mem_%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(
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
	return db
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

func createTestLawyer(db *gorm.DB, username string) *models.User {
	hash, _ := HashPassword("password123")
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		IsActive: true,
	}
	db.Create(user)
	return user
}

func createTestCourt(db *gorm.DB) *models.Court {
	court := &models.Court{
		Name:      "Test District Court " + uuid.New().String()[:8],
		CourtType: models.CourtTypeDistrict,
		Location:  "Delhi",
		State:     "Delhi",
	}
	db.Create(court)
	return court
}

func createTestClient(db *gorm.DB, lawyerID, name string) *models.Client {
	client := &models.Client{
		LawyerID: lawyerID,
		Name:     name,
		Phone:    "9876543210",
		Address:  "12 Court Road",
		IsActive: true,
	}
	db.Create(client)
	return client
}

func createTestCase(db *gorm.DB, lawyerID, clientID, courtID, caseNumber string) *models.Case {
	caseRecord := &models.Case{
		LawyerID:    lawyerID,
		ClientID:    clientID,
		CourtID:     courtID,
		CaseNumber:  caseNumber,
		CaseTitle:   "State vs Example",
		CaseType:    models.CaseTypeCivil,
		FilingDate:  time.Now().AddDate(0, -1, 0),
		Description: "Test case",
	}
	db.Create(caseRecord)
	return caseRecord
}
