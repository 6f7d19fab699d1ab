package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Court type constants
const (
	CourtTypeSupreme    = "SC"
	CourtTypeHigh       = "HC"
	CourtTypeDistrict   = "DC"
	CourtTypeSessions   = "SC_MAG"
	CourtTypeMagistrate = "MAG"
	CourtTypeCJM        = "CJM"
	CourtTypeJMFC       = "JMFC"
	CourtTypeFamily     = "FAMILY"
	CourtTypeConsumer   = "CONSUMER"
	CourtTypeLabour     = "LABOUR"
	CourtTypeTribunal   = "TRIBUNAL"
	CourtTypeDebts      = "DEBTS"
)

// CourtTypeLabels maps court type codes to display names
var CourtTypeLabels = map[string]string{
	CourtTypeSupreme:    "Supreme Court of India",
	CourtTypeHigh:       "High Court",
	CourtTypeDistrict:   "District Court",
	CourtTypeSessions:   "Sessions Court",
	CourtTypeMagistrate: "Magistrate Court",
	CourtTypeCJM:        "Chief Judicial Magistrate Court",
	CourtTypeJMFC:       "Judicial Magistrate First Class",
	CourtTypeFamily:     "Family Court",
	CourtTypeConsumer:   "Consumer Court",
	CourtTypeLabour:     "Labour Court",
	CourtTypeTribunal:   "Tribunal",
	CourtTypeDebts:      "Debts Recovery Tribunal",
}

// Court represents an Indian court. Courts are shared reference data:
// they have no owner and are seeded once, then rarely edited.
type Court struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name        string `gorm:"not null;size:200;index:idx_court_type_name" json:"name"`
	CourtType   string `gorm:"not null;size:20;index:idx_court_type_name" json:"court_type"`
	Location    string `gorm:"not null;size:200" json:"location"`
	State       string `gorm:"not null;size:100;index" json:"state"`
	Address     string `gorm:"type:text" json:"address"`
	ContactInfo string `gorm:"type:text" json:"contact_info"`
}

// BeforeCreate hook to generate UUID
func (c *Court) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Court model
func (Court) TableName() string {
	return "courts"
}

// TypeDisplayName returns the human-readable court type
func (c *Court) TypeDisplayName() string {
	if label, ok := CourtTypeLabels[c.CourtType]; ok {
		return label
	}
	return c.CourtType
}

// IsValidCourtType checks if the court type is valid
func IsValidCourtType(courtType string) bool {
	_, ok := CourtTypeLabels[courtType]
	return ok
}
