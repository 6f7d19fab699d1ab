package models

import (
	"time"
)

// BlacklistedToken records a refresh credential that must no longer be
// honored. Only the SHA-256 hash of the token is stored. Rows are kept
// until the token's own expiry passes, after which the cleanup job
// removes them (an expired token fails validation anyway).
type BlacklistedToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TokenHash string    `gorm:"uniqueIndex;not null;type:varchar(64)" json:"-"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// TableName specifies the table name for BlacklistedToken model
func (BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}
