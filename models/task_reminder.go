package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task type constants
const (
	TaskTypeHearingPrep    = "HEARING_PREP"
	TaskTypeDocumentFiling = "DOCUMENT_FILING"
	TaskTypeLimitation     = "LIMITATION"
	TaskTypeClientMeeting  = "CLIENT_MEETING"
	TaskTypeCourtFee       = "COURT_FEE"
	TaskTypeAppealDeadline = "APPEAL_DEADLINE"
	TaskTypeCompliance     = "COMPLIANCE"
	TaskTypeFollowUp       = "FOLLOW_UP"
	TaskTypeOther          = "OTHER"
)

// TaskReminder represents a deadline or to-do item for a lawyer,
// optionally linked to a case. Linked tasks are cascade-deleted with
// the case.
type TaskReminder struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LawyerID string `gorm:"type:uuid;not null;index" json:"lawyer_id"`
	Lawyer   User   `gorm:"foreignKey:LawyerID;constraint:OnDelete:CASCADE" json:"-"`

	CaseID *string `gorm:"type:uuid;index" json:"case_id,omitempty"`
	Case   *Case   `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"case,omitempty"`

	Title       string `gorm:"not null;size:200" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	TaskType    string `gorm:"not null;size:20" json:"task_type"`
	Priority    string `gorm:"not null;size:10;default:MEDIUM" json:"priority"`

	DueDate       time.Time  `gorm:"not null;index" json:"due_date"`
	ReminderDate  *time.Time `json:"reminder_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`

	IsCompleted bool `gorm:"not null;default:false;index" json:"is_completed"`
	IsOverdue   bool `gorm:"not null;default:false" json:"is_overdue"`

	// Set once the reminder email for this task has gone out.
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
}

// BeforeCreate hook to generate UUID and apply defaults
func (t *TaskReminder) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return nil
}

// TableName specifies the table name for TaskReminder model
func (TaskReminder) TableName() string {
	return "task_reminders"
}

// IsValidTaskType checks if the task type is valid
func IsValidTaskType(taskType string) bool {
	switch taskType {
	case TaskTypeHearingPrep, TaskTypeDocumentFiling, TaskTypeLimitation,
		TaskTypeClientMeeting, TaskTypeCourtFee, TaskTypeAppealDeadline,
		TaskTypeCompliance, TaskTypeFollowUp, TaskTypeOther:
		return true
	}
	return false
}
