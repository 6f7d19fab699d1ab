package services

import (
	"fmt"
	"lawyer_diary_go/models"
	"time"

	"gorm.io/gorm"
)

// DashboardSummary aggregates the numbers and short lists shown on the
// lawyer's landing page.
type DashboardSummary struct {
	TotalCases       int64                 `json:"total_cases"`
	ActiveCases      int64                 `json:"active_cases"`
	ActiveClients    int64                 `json:"active_clients"`
	TodayHearings    []models.Hearing      `json:"today_hearings"`
	UpcomingHearings []models.Hearing      `json:"upcoming_hearings"`
	PendingTasks     []models.TaskReminder `json:"pending_tasks"`
	OverdueTasks     []models.TaskReminder `json:"overdue_tasks"`
	RecentCases      []models.Case         `json:"recent_cases"`
}

// CalendarEvent is a FullCalendar-compatible entry built from either a
// hearing or a task reminder.
type CalendarEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	URL   string `json:"url,omitempty"`
	Color string `json:"color"`
}

// GetDashboardSummary builds the dashboard for one lawyer. Day
// boundaries are computed in the configured timezone.
func GetDashboardSummary(db *gorm.DB, loc *time.Location, lawyerID string) (*DashboardSummary, error) {
	summary := &DashboardSummary{}
	now := time.Now().In(loc)
	todayStart, tomorrowStart := DayBounds(now, loc)
	weekEnd := todayStart.AddDate(0, 0, 7)

	if err := db.Model(&models.Case{}).
		Where("lawyer_id = ?", lawyerID).
		Count(&summary.TotalCases).Error; err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	if err := db.Model(&models.Case{}).
		Where("lawyer_id = ? AND status = ?", lawyerID, models.CaseStatusActive).
		Count(&summary.ActiveCases).Error; err != nil {
		return nil, fmt.Errorf("failed to count active cases: %w", err)
	}

	if err := db.Model(&models.Client{}).
		Where("lawyer_id = ? AND is_active = ?", lawyerID, true).
		Count(&summary.ActiveClients).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	if err := lawyerHearings(db, lawyerID).
		Where("hearings.hearing_date >= ? AND hearings.hearing_date < ?", todayStart, tomorrowStart).
		Where("hearings.status = ?", models.HearingStatusScheduled).
		Order("hearings.hearing_date ASC").
		Preload("Case").Preload("Case.Court").
		Find(&summary.TodayHearings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch today's hearings: %w", err)
	}

	if err := lawyerHearings(db, lawyerID).
		Where("hearings.hearing_date >= ? AND hearings.hearing_date < ?", tomorrowStart, weekEnd).
		Where("hearings.status = ?", models.HearingStatusScheduled).
		Order("hearings.hearing_date ASC").
		Limit(5).
		Preload("Case").Preload("Case.Court").
		Find(&summary.UpcomingHearings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming hearings: %w", err)
	}

	if err := db.Where("lawyer_id = ? AND is_completed = ? AND due_date >= ?", lawyerID, false, now).
		Order("due_date ASC").
		Limit(5).
		Find(&summary.PendingTasks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pending tasks: %w", err)
	}

	if err := db.Where("lawyer_id = ? AND is_completed = ? AND due_date < ?", lawyerID, false, now).
		Order("due_date ASC").
		Limit(5).
		Find(&summary.OverdueTasks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch overdue tasks: %w", err)
	}

	if err := db.Where("lawyer_id = ?", lawyerID).
		Order("created_at DESC").
		Limit(5).
		Preload("Client").Preload("Court").
		Find(&summary.RecentCases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent cases: %w", err)
	}

	return summary, nil
}

func hearingColor(status string) string {
	switch status {
	case models.HearingStatusScheduled:
		return "#0d6efd"
	case models.HearingStatusCompleted:
		return "#198754"
	case models.HearingStatusAdjourned:
		return "#ffc107"
	default:
		return "#6c757d"
	}
}

func taskColor(priority string) string {
	switch priority {
	case models.PriorityUrgent:
		return "#dc3545"
	case models.PriorityHigh:
		return "#ffc107"
	case models.PriorityMedium:
		return "#0dcaf0"
	default:
		return "#6c757d"
	}
}

// CalendarEvents returns the lawyer's hearings and open tasks as
// calendar entries. Hearings are colored by status, tasks by priority.
func CalendarEvents(db *gorm.DB, lawyerID string) ([]CalendarEvent, error) {
	var hearings []models.Hearing
	if err := lawyerHearings(db, lawyerID).
		Preload("Case").
		Find(&hearings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch hearings for calendar: %w", err)
	}

	var tasks []models.TaskReminder
	if err := db.Where("lawyer_id = ? AND is_completed = ?", lawyerID, false).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks for calendar: %w", err)
	}

	events := make([]CalendarEvent, 0, len(hearings)+len(tasks))
	for _, h := range hearings {
		title := h.HearingType
		if h.Case.CaseNumber != "" {
			title = fmt.Sprintf("%s - %s", h.Case.CaseNumber, h.HearingType)
		}
		events = append(events, CalendarEvent{
			ID:    "hearing-" + h.ID,
			Title: title,
			Start: h.HearingDate.Format(time.RFC3339),
			URL:   "/cases/" + h.CaseID,
			Color: hearingColor(h.Status),
		})
	}
	for _, t := range tasks {
		events = append(events, CalendarEvent{
			ID:    "task-" + t.ID,
			Title: "Task: " + t.Title,
			Start: t.DueDate.Format(time.RFC3339),
			URL:   "/tasks/" + t.ID,
			Color: taskColor(t.Priority),
		})
	}
	return events, nil
}
