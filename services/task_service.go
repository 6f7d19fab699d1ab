package services

import (
	"fmt"
	"lawyer_diary_go/models"
	"time"

	"gorm.io/gorm"
)

// Completion filter keywords for ListTasks
const (
	TaskFilterPending   = "pending"
	TaskFilterCompleted = "completed"
	TaskFilterOverdue   = "overdue"
	TaskFilterAll       = "all"
)

// TaskInput carries the fields accepted when creating a task reminder.
type TaskInput struct {
	CaseID       string `json:"case_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	TaskType     string `json:"task_type"`
	Priority     string `json:"priority"`
	DueDate      string `json:"due_date"`
	DueTime      string `json:"due_time"`
	ReminderDate string `json:"reminder_date"`
	ReminderTime string `json:"reminder_time"`
}

// TaskFilters are the optional constraints for ListTasks.
type TaskFilters struct {
	Status   string // pending (default), completed, overdue, all
	Priority string
	CaseID   string
}

// CreateTask creates a task reminder, optionally linked to a case the
// lawyer owns. A case link to another lawyer's case is rejected.
func CreateTask(db *gorm.DB, loc *time.Location, lawyerID string, input TaskInput) (*models.TaskReminder, error) {
	if input.Title == "" {
		return nil, NewValidationError("title", "task title is required")
	}
	if input.Description == "" {
		return nil, NewValidationError("description", "task description is required")
	}
	if !models.IsValidTaskType(input.TaskType) {
		return nil, NewValidationError("task_type", "invalid task type")
	}
	if input.Priority != "" && !models.IsValidPriority(input.Priority) {
		return nil, NewValidationError("priority", "invalid priority level")
	}

	dueTime := input.DueTime
	if dueTime == "" {
		dueTime = "17:00"
	}
	dueDate, err := CombineDateTime(input.DueDate, dueTime, loc)
	if err != nil {
		return nil, NewValidationError("due_date", "invalid due date/time: expected YYYY-MM-DD and HH:MM")
	}

	task := &models.TaskReminder{
		LawyerID:    lawyerID,
		Title:       input.Title,
		Description: SanitizeText(input.Description),
		TaskType:    input.TaskType,
		Priority:    input.Priority,
		DueDate:     dueDate,
	}

	if input.CaseID != "" {
		var caseRecord models.Case
		if err := db.Where("lawyer_id = ?", lawyerID).First(&caseRecord, "id = ?", input.CaseID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, NewValidationError("case_id", "case not found")
			}
			return nil, fmt.Errorf("failed to fetch case: %w", err)
		}
		task.CaseID = &caseRecord.ID
	}

	if input.ReminderDate != "" {
		reminderTime := input.ReminderTime
		if reminderTime == "" {
			reminderTime = "09:00"
		}
		reminder, err := CombineDateTime(input.ReminderDate, reminderTime, loc)
		if err != nil {
			return nil, NewValidationError("reminder_date", "invalid reminder date/time")
		}
		task.ReminderDate = &reminder
	}

	if err := db.Create(task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// ListTasks returns one page of the lawyer's tasks ordered by due date.
// The overdue filter derives from the due date directly, so it never
// depends on a stale is_overdue flag.
func ListTasks(db *gorm.DB, lawyerID string, filters TaskFilters, page int) ([]models.TaskReminder, Pagination, error) {
	query := db.Where("lawyer_id = ?", lawyerID)

	status := filters.Status
	if status == "" {
		status = TaskFilterPending
	}
	switch status {
	case TaskFilterPending:
		query = query.Where("is_completed = ?", false)
	case TaskFilterCompleted:
		query = query.Where("is_completed = ?", true)
	case TaskFilterOverdue:
		query = query.Where("is_completed = ? AND due_date < ?", false, time.Now())
	case TaskFilterAll:
		// no completion constraint
	default:
		return nil, Pagination{}, NewValidationError("status", "invalid task status filter")
	}

	if filters.Priority != "" && models.IsValidPriority(filters.Priority) {
		query = query.Where("priority = ?", filters.Priority)
	}
	if filters.CaseID != "" {
		query = query.Where("case_id = ?", filters.CaseID)
	}

	query, pagination, err := paginate(query, &models.TaskReminder{}, page)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count tasks: %w", err)
	}

	var tasks []models.TaskReminder
	if err := query.
		Preload("Case").
		Order("due_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, pagination, nil
}

// GetTask returns the task if it belongs to the lawyer.
func GetTask(db *gorm.DB, lawyerID, taskID string) (*models.TaskReminder, error) {
	var task models.TaskReminder
	err := db.Where("lawyer_id = ?", lawyerID).
		Preload("Case").
		First(&task, "id = ?", taskID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return &task, nil
}

// MarkTaskCompleted marks a task complete. Idempotent: the completion
// timestamp is set on the first transition only and a second call is a
// no-op.
func MarkTaskCompleted(db *gorm.DB, lawyerID, taskID string) (*models.TaskReminder, error) {
	task, err := GetTask(db, lawyerID, taskID)
	if err != nil {
		return nil, err
	}

	if task.IsCompleted {
		return task, nil
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_completed":   true,
		"completed_date": now,
	}
	if err := db.Model(task).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to mark task completed: %w", err)
	}
	task.IsCompleted = true
	task.CompletedDate = &now
	return task, nil
}

// RecomputeOverdue sets the overdue flag iff the task is incomplete and
// its due date has passed. A pure derivation, safe to run repeatedly;
// completed tasks are never touched.
func RecomputeOverdue(db *gorm.DB, task *models.TaskReminder) (bool, error) {
	if task.IsCompleted {
		return false, nil
	}
	if !task.DueDate.Before(time.Now()) {
		return false, nil
	}
	if !task.IsOverdue {
		if err := db.Model(task).Update("is_overdue", true).Error; err != nil {
			return false, fmt.Errorf("failed to update overdue flag: %w", err)
		}
		task.IsOverdue = true
	}
	return true, nil
}
