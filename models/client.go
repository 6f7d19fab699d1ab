package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a person or entity represented by a lawyer.
// The (lawyer_id, name) pair is unique: a lawyer cannot register two
// identically-named clients, but different lawyers may reuse a name.
type Client struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LawyerID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_client_lawyer_name" json:"lawyer_id"`
	Lawyer   User   `gorm:"foreignKey:LawyerID;constraint:OnDelete:CASCADE" json:"-"`

	Name         string `gorm:"not null;size:200;uniqueIndex:idx_client_lawyer_name" json:"name"`
	Email        string `gorm:"size:254" json:"email"`
	Phone        string `gorm:"not null;size:15" json:"phone"`
	Address      string `gorm:"type:text;not null" json:"address"`
	Occupation   string `gorm:"size:100" json:"occupation"`
	AadharNumber string `gorm:"size:12" json:"aadhar_number"`
	PANNumber    string `gorm:"size:10" json:"pan_number"`
	Notes        string `gorm:"type:text" json:"notes"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	Cases []Case `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"cases,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}
