package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case type constants
const (
	CaseTypeCivil        = "CIVIL"
	CaseTypeCriminal     = "CRIMINAL"
	CaseTypeFamily       = "FAMILY"
	CaseTypeProperty     = "PROPERTY"
	CaseTypeLabour       = "LABOUR"
	CaseTypeConsumer     = "CONSUMER"
	CaseTypeMatrimonial  = "MATRIMONIAL"
	CaseTypeChequeBounce = "CHEQUE_BOUNCE"
	CaseTypeArbitration  = "ARBITRATION"
	CaseTypeWrit         = "WRIT"
	CaseTypeAppeal       = "APPEAL"
	CaseTypeRevision     = "REVISION"
	CaseTypeBail         = "BAIL"
	CaseTypeCompany      = "COMPANY"
	CaseTypeTax          = "TAX"
	CaseTypeBankRecovery = "BANK_RECOVERY"
	CaseTypeInsurance    = "INSURANCE"
)

// Case status constants
const (
	CaseStatusActive           = "ACTIVE"
	CaseStatusPending          = "PENDING"
	CaseStatusAdjourned        = "ADJOURNED"
	CaseStatusJudgmentReserved = "JUDGMENT_RESERVED"
	CaseStatusWon              = "WON"
	CaseStatusLost             = "LOST"
	CaseStatusSettled          = "SETTLED"
	CaseStatusWithdrawn        = "WITHDRAWN"
	CaseStatusDismissed        = "DISMISSED"
)

// Priority constants shared by cases and tasks
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Case represents a legal case owned by a lawyer, linked to one client
// and one court. The (lawyer_id, case_number, court_id) triple is unique.
type Case struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LawyerID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_case_lawyer_number_court" json:"lawyer_id"`
	Lawyer   User   `gorm:"foreignKey:LawyerID;constraint:OnDelete:CASCADE" json:"-"`

	ClientID string `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"client,omitempty"`

	CourtID string `gorm:"type:uuid;not null;uniqueIndex:idx_case_lawyer_number_court" json:"court_id"`
	Court   Court  `gorm:"foreignKey:CourtID" json:"court,omitempty"`

	// Case identification
	CaseNumber string    `gorm:"not null;size:50;uniqueIndex:idx_case_lawyer_number_court" json:"case_number"`
	CaseTitle  string    `gorm:"not null;size:300" json:"case_title"`
	CaseType   string    `gorm:"not null;size:20" json:"case_type"`
	FilingDate time.Time `gorm:"not null" json:"filing_date"`

	// Status and priority
	Status   string `gorm:"not null;size:20;default:ACTIVE;index" json:"status"`
	Priority string `gorm:"not null;size:10;default:MEDIUM" json:"priority"`

	// Description
	Description string `gorm:"type:text;not null" json:"description"`
	LegalIssues string `gorm:"type:text" json:"legal_issues"`

	// Financials
	CaseValue    *float64 `json:"case_value,omitempty"`
	FeesCharged  *float64 `json:"fees_charged,omitempty"`
	FeesReceived float64  `gorm:"not null;default:0" json:"fees_received"`

	// Important dates
	NextHearingDate *time.Time `gorm:"index" json:"next_hearing_date,omitempty"`
	LimitationDate  *time.Time `json:"limitation_date,omitempty"`

	// Relationships
	Hearings  []Hearing      `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"hearings,omitempty"`
	Documents []Document     `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Tasks     []TaskReminder `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// BeforeCreate hook to generate UUID and apply defaults
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = CaseStatusActive
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// PendingFees returns fees still owed. Zero when no fees were charged.
func (c *Case) PendingFees() float64 {
	if c.FeesCharged == nil {
		return 0
	}
	return *c.FeesCharged - c.FeesReceived
}

// IsHearingToday reports whether the next hearing falls on today's
// calendar date in the given location.
func (c *Case) IsHearingToday(loc *time.Location) bool {
	if c.NextHearingDate == nil {
		return false
	}
	return sameDate(c.NextHearingDate.In(loc), time.Now().In(loc))
}

// IsHearingOverdue reports whether the next hearing date has passed,
// comparing calendar dates in the given location.
func (c *Case) IsHearingOverdue(loc *time.Location) bool {
	if c.NextHearingDate == nil {
		return false
	}
	hy, hm, hd := c.NextHearingDate.In(loc).Date()
	ny, nm, nd := time.Now().In(loc).Date()
	hearing := time.Date(hy, hm, hd, 0, 0, 0, 0, loc)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, loc)
	return hearing.Before(today)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

var validCaseTypes = map[string]bool{
	CaseTypeCivil: true, CaseTypeCriminal: true, CaseTypeFamily: true,
	CaseTypeProperty: true, CaseTypeLabour: true, CaseTypeConsumer: true,
	CaseTypeMatrimonial: true, CaseTypeChequeBounce: true, CaseTypeArbitration: true,
	CaseTypeWrit: true, CaseTypeAppeal: true, CaseTypeRevision: true,
	CaseTypeBail: true, CaseTypeCompany: true, CaseTypeTax: true,
	CaseTypeBankRecovery: true, CaseTypeInsurance: true,
}

// IsValidCaseType checks if the case type is valid
func IsValidCaseType(caseType string) bool {
	return validCaseTypes[caseType]
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	switch status {
	case CaseStatusActive, CaseStatusPending, CaseStatusAdjourned,
		CaseStatusJudgmentReserved, CaseStatusWon, CaseStatusLost,
		CaseStatusSettled, CaseStatusWithdrawn, CaseStatusDismissed:
		return true
	}
	return false
}

// IsValidPriority checks if the priority level is valid
func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
