package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hearing type constants
const (
	HearingTypeFirst              = "FIRST_HEARING"
	HearingTypeArguments          = "ARGUMENTS"
	HearingTypeEvidence           = "EVIDENCE"
	HearingTypeCrossExamination   = "CROSS_EXAMINATION"
	HearingTypeFinalArguments     = "FINAL_ARGUMENTS"
	HearingTypeJudgment           = "JUDGMENT"
	HearingTypeMention            = "MENTION"
	HearingTypeInterimApplication = "INTERIM_APPLICATION"
	HearingTypeBail               = "BAIL_HEARING"
	HearingTypeStatusConference   = "STATUS_CONFERENCE"
)

// Hearing status constants
const (
	HearingStatusScheduled = "SCHEDULED"
	HearingStatusCompleted = "COMPLETED"
	HearingStatusAdjourned = "ADJOURNED"
	HearingStatusCancelled = "CANCELLED"
	HearingStatusNoShow    = "NO_SHOW"
)

// Hearing represents one court hearing of a case. Hearings are owned
// transitively through the case and cascade-deleted with it.
type Hearing struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"case,omitempty"`

	HearingDate time.Time `gorm:"not null;index" json:"hearing_date"`
	HearingType string    `gorm:"not null;size:20" json:"hearing_type"`
	CourtRoom   string    `gorm:"size:50" json:"court_room"`
	JudgeName   string    `gorm:"size:200" json:"judge_name"`

	Status   string     `gorm:"not null;size:15;default:SCHEDULED" json:"status"`
	Purpose  string     `gorm:"type:text;not null" json:"purpose"`
	Outcome  string     `gorm:"type:text" json:"outcome"`
	NextDate *time.Time `json:"next_date,omitempty"`

	PreparationNotes  string `gorm:"type:text" json:"preparation_notes"`
	DocumentsRequired string `gorm:"type:text" json:"documents_required"`
	WitnessesRequired string `gorm:"type:text" json:"witnesses_required"`

	// Set once the day-before reminder email has gone out.
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
}

// BeforeCreate hook to generate UUID and apply defaults
func (h *Hearing) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.Status == "" {
		h.Status = HearingStatusScheduled
	}
	return nil
}

// TableName specifies the table name for Hearing model
func (Hearing) TableName() string {
	return "hearings"
}

// IsToday reports whether the hearing falls on today's calendar date in
// the given location.
func (h *Hearing) IsToday(loc *time.Location) bool {
	return sameDate(h.HearingDate.In(loc), time.Now().In(loc))
}

// IsUpcoming reports whether the hearing is in the future.
func (h *Hearing) IsUpcoming() bool {
	return h.HearingDate.After(time.Now())
}

// IsValidHearingType checks if the hearing type is valid
func IsValidHearingType(hearingType string) bool {
	switch hearingType {
	case HearingTypeFirst, HearingTypeArguments, HearingTypeEvidence,
		HearingTypeCrossExamination, HearingTypeFinalArguments,
		HearingTypeJudgment, HearingTypeMention, HearingTypeInterimApplication,
		HearingTypeBail, HearingTypeStatusConference:
		return true
	}
	return false
}

// IsValidHearingStatus checks if the hearing status is valid
func IsValidHearingStatus(status string) bool {
	switch status {
	case HearingStatusScheduled, HearingStatusCompleted, HearingStatusAdjourned,
		HearingStatusCancelled, HearingStatusNoShow:
		return true
	}
	return false
}
