package services

import (
	"fmt"
	"lawyer_diary_go/config"
	"lawyer_diary_go/models"
	"log"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	TextBody string
}

// SendEmail sends an email using the Resend API. In test mode the
// message is written to the log instead.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.TextBody == "" {
		return fmt.Errorf("email must have a body")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode - not actually sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n%s\n%s", email.TextBody, separator)
}

// BuildTaskReminderEmail creates a reminder for a task that has reached
// its reminder date.
func BuildTaskReminderEmail(lawyer *models.User, task *models.TaskReminder, loc *time.Location) *Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", lawyer.Username)
	fmt.Fprintf(&b, "This is a reminder for your task:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", task.Title)
	fmt.Fprintf(&b, "Type: %s\n", task.TaskType)
	fmt.Fprintf(&b, "Priority: %s\n", task.Priority)
	fmt.Fprintf(&b, "Due: %s\n", task.DueDate.In(loc).Format("02 Jan 2006 15:04"))
	if task.Case != nil && task.Case.CaseNumber != "" {
		fmt.Fprintf(&b, "Case: %s - %s\n", task.Case.CaseNumber, task.Case.CaseTitle)
	}
	fmt.Fprintf(&b, "\n%s\n", task.Description)

	return &Email{
		To:       []string{lawyer.Email},
		Subject:  fmt.Sprintf("Task reminder: %s", task.Title),
		TextBody: b.String(),
	}
}

// BuildHearingReminderEmail creates a day-before notice for a scheduled
// hearing.
func BuildHearingReminderEmail(lawyer *models.User, hearing *models.Hearing, loc *time.Location) *Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", lawyer.Username)
	fmt.Fprintf(&b, "You have a hearing scheduled tomorrow:\n\n")
	fmt.Fprintf(&b, "Case: %s - %s\n", hearing.Case.CaseNumber, hearing.Case.CaseTitle)
	fmt.Fprintf(&b, "Type: %s\n", hearing.HearingType)
	fmt.Fprintf(&b, "Date: %s\n", hearing.HearingDate.In(loc).Format("02 Jan 2006 15:04"))
	if hearing.Case.Court.Name != "" {
		fmt.Fprintf(&b, "Court: %s, %s\n", hearing.Case.Court.Name, hearing.Case.Court.Location)
	}
	if hearing.Purpose != "" {
		fmt.Fprintf(&b, "Purpose: %s\n", hearing.Purpose)
	}
	if hearing.PreparationNotes != "" {
		fmt.Fprintf(&b, "\nPreparation notes:\n%s\n", hearing.PreparationNotes)
	}

	return &Email{
		To:       []string{lawyer.Email},
		Subject:  fmt.Sprintf("Hearing tomorrow: %s", hearing.Case.CaseNumber),
		TextBody: b.String(),
	}
}
