package services

import (
	"errors"
	"testing"
	"time"

	"lawyer_diary_go/models"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	password := "SecretPass123!"

	hash, err := HashPassword(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, VerifyPassword(hash, password))
	assert.False(t, VerifyPassword(hash, "WrongPass"))
}

func TestRegisterUserValidationOrder(t *testing.T) {
	db := setupTestDB()

	cases := []struct {
		name  string
		input SignupInput
		field string
	}{
		{"missing username", SignupInput{Email: "a@b.com", Password: "longenough", ConfirmPassword: "longenough"}, "username"},
		{"missing email", SignupInput{Username: "adv_rao", Password: "longenough", ConfirmPassword: "longenough"}, "email"},
		{"missing password", SignupInput{Username: "adv_rao", Email: "a@b.com"}, "password"},
		{"password mismatch", SignupInput{Username: "adv_rao", Email: "a@b.com", Password: "longenough", ConfirmPassword: "different"}, "password"},
		{"password too short", SignupInput{Username: "adv_rao", Email: "a@b.com", Password: "short1", ConfirmPassword: "short1"}, "password"},
		{"bad email", SignupInput{Username: "adv_rao", Email: "not-an-email", Password: "longenough", ConfirmPassword: "longenough"}, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := RegisterUser(db, tc.input)
			assert.Nil(t, user)
			ve, ok := AsValidationError(err)
			assert.True(t, ok)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestRegisterUserDuplicates(t *testing.T) {
	db := setupTestDB()

	first, err := RegisterUser(db, SignupInput{
		Username: "adv_sharma", Email: "sharma@example.com",
		Password: "longenough", ConfirmPassword: "longenough",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.True(t, first.IsActive)

	_, err = RegisterUser(db, SignupInput{
		Username: "adv_sharma", Email: "other@example.com",
		Password: "longenough", ConfirmPassword: "longenough",
	})
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "username", ve.Field)

	_, err = RegisterUser(db, SignupInput{
		Username: "adv_other", Email: "sharma@example.com",
		Password: "longenough", ConfirmPassword: "longenough",
	})
	ve, ok = AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "email", ve.Field)
}

func TestAuthenticateUser(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_verma")

	user, err := AuthenticateUser(db, "adv_verma", "password123")
	assert.NoError(t, err)
	assert.Equal(t, lawyer.ID, user.ID)
	assert.NotNil(t, user.LastLoginAt)

	_, err = AuthenticateUser(db, "adv_verma", "wrongpass")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = AuthenticateUser(db, "no_such_user", "password123")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthenticateInactiveUser(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_inactive")
	db.Model(lawyer).Update("is_active", false)

	_, err := AuthenticateUser(db, "adv_inactive", "password123")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestSessionLifecycle(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_session")

	session, err := CreateSession(db, lawyer.ID, "127.0.0.1", "TestAgent")
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(DefaultSessionDuration), session.ExpiresAt, 10*time.Second)

	valid, err := ValidateSession(db, session.Token)
	assert.NoError(t, err)
	assert.Equal(t, lawyer.ID, valid.User.ID)

	_, err = ValidateSession(db, "invalid-token")
	assert.Error(t, err)

	assert.NoError(t, DeleteSession(db, session.Token))

	_, err = ValidateSession(db, session.Token)
	assert.Error(t, err)
}

func TestSessionExpiry(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_expired")

	session := &models.Session{
		ID:        "session-expired",
		UserID:    lawyer.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	db.Create(session)

	_, err := ValidateSession(db, "expired-token")
	assert.Error(t, err)

	// Expired session is removed on validation
	var count int64
	db.Model(&models.Session{}).Where("token = ?", "expired-token").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCleanupExpiredSessions(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_cleanup")

	db.Create(&models.Session{ID: "s1", UserID: lawyer.ID, Token: "t1", ExpiresAt: time.Now().Add(-time.Minute)})
	db.Create(&models.Session{ID: "s2", UserID: lawyer.ID, Token: "t2", ExpiresAt: time.Now().Add(time.Hour)})

	assert.NoError(t, CleanupExpiredSessions(db))

	var count int64
	db.Model(&models.Session{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
