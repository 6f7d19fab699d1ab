package jobs

import (
	"lawyer_diary_go/config"
	"lawyer_diary_go/models"
	"lawyer_diary_go/services"
	"log"
	"time"

	"gorm.io/gorm"
)

// SendTaskReminders emails lawyers about tasks whose reminder date has
// arrived. Each task is reminded at most once.
func SendTaskReminders(database *gorm.DB, cfg *config.Config, loc *time.Location) {
	log.Println("Starting task reminder job...")

	now := time.Now()

	var tasks []models.TaskReminder
	err := database.Preload("Lawyer").Preload("Case").
		Where("is_completed = ?", false).
		Where("reminder_date IS NOT NULL AND reminder_date <= ?", now).
		Where("reminder_sent_at IS NULL").
		Find(&tasks).Error
	if err != nil {
		log.Printf("Error fetching tasks for reminders: %v", err)
		return
	}

	log.Printf("Found %d tasks to remind", len(tasks))

	for _, task := range tasks {
		email := services.BuildTaskReminderEmail(&task.Lawyer, &task, loc)
		if err := services.SendEmail(cfg, email); err != nil {
			log.Printf("Failed to send reminder for task %s: %v", task.ID, err)
			continue
		}

		sentAt := time.Now()
		database.Model(&task).Update("reminder_sent_at", sentAt)
		log.Printf("Sent reminder for task %s", task.ID)
	}

	log.Println("Task reminder job completed")
}

// SendHearingReminders emails lawyers the day before their scheduled
// hearings.
func SendHearingReminders(database *gorm.DB, cfg *config.Config, loc *time.Location) {
	log.Println("Starting hearing reminder job...")

	now := time.Now().In(loc)
	_, tomorrowStart := services.DayBounds(now, loc)
	_, dayAfterStart := services.DayBounds(now.AddDate(0, 0, 1), loc)

	var hearings []models.Hearing
	err := database.Preload("Case").Preload("Case.Lawyer").Preload("Case.Court").
		Where("status = ?", models.HearingStatusScheduled).
		Where("hearing_date >= ? AND hearing_date < ?", tomorrowStart, dayAfterStart).
		Where("reminder_sent_at IS NULL").
		Find(&hearings).Error
	if err != nil {
		log.Printf("Error fetching hearings for reminders: %v", err)
		return
	}

	log.Printf("Found %d hearings to remind", len(hearings))

	for _, hearing := range hearings {
		email := services.BuildHearingReminderEmail(&hearing.Case.Lawyer, &hearing, loc)
		if err := services.SendEmail(cfg, email); err != nil {
			log.Printf("Failed to send reminder for hearing %s: %v", hearing.ID, err)
			continue
		}

		sentAt := time.Now()
		database.Model(&hearing).Update("reminder_sent_at", sentAt)
		log.Printf("Sent reminder for hearing %s", hearing.ID)
	}

	log.Println("Hearing reminder job completed")
}
