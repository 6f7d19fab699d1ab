package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"lawyer_diary_go/config"
	"lawyer_diary_go/models"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token type claim values
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims are the claims embedded in both access and refresh tokens.
// TokenType distinguishes the two so a refresh credential can never be
// used directly as an access credential.
type TokenClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair bundles an access and refresh credential for one user.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IssueTokenPair mints a short-lived access token and a long-lived
// refresh token for the user.
func IssueTokenPair(cfg *config.Config, userID string) (*TokenPair, error) {
	access, err := mintToken(cfg.JWTSecret, userID, TokenTypeAccess, cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to mint access token: %w", err)
	}
	refresh, err := mintToken(cfg.JWTSecret, userID, TokenTypeRefresh, cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to mint refresh token: %w", err)
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func mintToken(secret, userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and checks that the token is
// of the wanted type. Any failure maps to ErrInvalidCredentials.
func ParseToken(cfg *config.Config, raw, wantType string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// ResolveAccessToken validates an access token and loads the active user
// it was minted for.
func ResolveAccessToken(db *gorm.DB, cfg *config.Config, raw string) (*models.User, error) {
	claims, err := ParseToken(cfg, raw, TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, "id = ?", claims.Subject).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// RefreshAccessToken re-validates a refresh credential (signature,
// expiry, type, blacklist) and mints a new access token bound to the
// same user.
func RefreshAccessToken(db *gorm.DB, cfg *config.Config, refreshRaw string) (string, *models.User, error) {
	claims, err := ParseToken(cfg, refreshRaw, TokenTypeRefresh)
	if err != nil {
		return "", nil, err
	}

	blacklisted, err := IsTokenBlacklisted(db, refreshRaw)
	if err != nil {
		return "", nil, err
	}
	if blacklisted {
		return "", nil, ErrInvalidCredentials
	}

	var user models.User
	if err := db.First(&user, "id = ?", claims.Subject).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	access, err := mintToken(cfg.JWTSecret, user.ID, TokenTypeAccess, cfg.AccessTokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to mint access token: %w", err)
	}
	return access, &user, nil
}

// hashToken returns the SHA-256 hash of a raw token as hex. Only hashes
// are persisted, never the credential itself.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// BlacklistRefreshToken durably revokes a refresh credential. The row
// keeps the token's own expiry so cleanup can drop it once it would have
// failed validation anyway. Re-blacklisting the same token is a no-op.
func BlacklistRefreshToken(db *gorm.DB, cfg *config.Config, refreshRaw string) error {
	claims, err := ParseToken(cfg, refreshRaw, TokenTypeRefresh)
	if err != nil {
		return err
	}

	entry := &models.BlacklistedToken{
		TokenHash: hashToken(refreshRaw),
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := db.Where("token_hash = ?", entry.TokenHash).FirstOrCreate(entry).Error; err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether the refresh credential has been
// revoked.
func IsTokenBlacklisted(db *gorm.DB, refreshRaw string) (bool, error) {
	var count int64
	err := db.Model(&models.BlacklistedToken{}).
		Where("token_hash = ?", hashToken(refreshRaw)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return count > 0, nil
}

// CleanupExpiredBlacklistedTokens drops blacklist rows for tokens that
// are past their own expiry.
func CleanupExpiredBlacklistedTokens(db *gorm.DB) error {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup blacklisted tokens: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		log.Printf("Cleaned up %d expired blacklisted tokens", result.RowsAffected)
	}
	return nil
}
