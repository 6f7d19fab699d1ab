package services

import (
	"fmt"
	"lawyer_diary_go/models"
	"time"

	"gorm.io/gorm"
)

// CaseInput carries the fields accepted when opening a case. Dates are
// submitted as strings and parsed here so every caller gets the same
// validation.
type CaseInput struct {
	ClientID        string   `json:"client_id"`
	CourtID         string   `json:"court_id"`
	CaseNumber      string   `json:"case_number"`
	CaseTitle       string   `json:"case_title"`
	CaseType        string   `json:"case_type"`
	FilingDate      string   `json:"filing_date"`
	Status          string   `json:"status"`
	Priority        string   `json:"priority"`
	Description     string   `json:"description"`
	LegalIssues     string   `json:"legal_issues"`
	CaseValue       *float64 `json:"case_value"`
	FeesCharged     *float64 `json:"fees_charged"`
	LimitationDate  string   `json:"limitation_date"`
	NextHearingDate string   `json:"next_hearing_date"`
	NextHearingTime string   `json:"next_hearing_time"`
}

// CaseFilters are the optional constraints for ListCases.
type CaseFilters struct {
	Status   string
	CaseType string
	Priority string
	Search   string
}

// CreateCase validates ownership of the referenced client, the court,
// the enums and the (lawyer, case_number, court) uniqueness invariant,
// then persists the case. When a next hearing date is supplied it is set
// on the same insert, so the case is never observable without it.
func CreateCase(db *gorm.DB, loc *time.Location, lawyerID string, input CaseInput) (*models.Case, error) {
	if input.CaseNumber == "" {
		return nil, NewValidationError("case_number", "case number is required")
	}
	if input.CaseTitle == "" {
		return nil, NewValidationError("case_title", "case title is required")
	}
	if !models.IsValidCaseType(input.CaseType) {
		return nil, NewValidationError("case_type", "invalid case type")
	}
	if input.Status != "" && !models.IsValidCaseStatus(input.Status) {
		return nil, NewValidationError("status", "invalid case status")
	}
	if input.Priority != "" && !models.IsValidPriority(input.Priority) {
		return nil, NewValidationError("priority", "invalid priority level")
	}
	if input.Description == "" {
		return nil, NewValidationError("description", "case description is required")
	}

	filingDate, err := ParseDate(input.FilingDate)
	if err != nil {
		return nil, NewValidationError("filing_date", "invalid filing date: expected YYYY-MM-DD")
	}

	// The referenced client must belong to the caller. A foreign client
	// is reported the same way as a missing one.
	if _, err := GetClient(db, lawyerID, input.ClientID); err != nil {
		if err == ErrNotFound {
			return nil, NewValidationError("client_id", "client not found")
		}
		return nil, err
	}

	var court models.Court
	if err := db.First(&court, "id = ?", input.CourtID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewValidationError("court_id", "court not found")
		}
		return nil, fmt.Errorf("failed to fetch court: %w", err)
	}

	var count int64
	if err := db.Model(&models.Case{}).
		Where("lawyer_id = ? AND case_number = ? AND court_id = ?", lawyerID, input.CaseNumber, input.CourtID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check case number: %w", err)
	}
	if count > 0 {
		return nil, NewValidationError("case_number", "a case with this number already exists in this court")
	}

	caseRecord := &models.Case{
		LawyerID:    lawyerID,
		ClientID:    input.ClientID,
		CourtID:     input.CourtID,
		CaseNumber:  input.CaseNumber,
		CaseTitle:   input.CaseTitle,
		CaseType:    input.CaseType,
		FilingDate:  filingDate,
		Status:      input.Status,
		Priority:    input.Priority,
		Description: SanitizeText(input.Description),
		LegalIssues: SanitizeText(input.LegalIssues),
		CaseValue:   input.CaseValue,
		FeesCharged: input.FeesCharged,
	}

	if input.LimitationDate != "" {
		limitation, err := ParseDate(input.LimitationDate)
		if err != nil {
			return nil, NewValidationError("limitation_date", "invalid limitation date: expected YYYY-MM-DD")
		}
		caseRecord.LimitationDate = &limitation
	}

	if input.NextHearingDate != "" {
		hearingTime := input.NextHearingTime
		if hearingTime == "" {
			hearingTime = "10:00"
		}
		nextHearing, err := CombineDateTime(input.NextHearingDate, hearingTime, loc)
		if err != nil {
			return nil, NewValidationError("next_hearing_date", "invalid next hearing date/time")
		}
		caseRecord.NextHearingDate = &nextHearing
	}

	if err := db.Create(caseRecord).Error; err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return caseRecord, nil
}

// ListCases returns one page of the lawyer's cases. Default order is
// next hearing date descending, then creation time descending. Search
// matches case number, title, description and client name.
func ListCases(db *gorm.DB, lawyerID string, filters CaseFilters, page int) ([]models.Case, Pagination, error) {
	query := db.Where("lawyer_id = ?", lawyerID)

	if filters.Status != "" && models.IsValidCaseStatus(filters.Status) {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.CaseType != "" && models.IsValidCaseType(filters.CaseType) {
		query = query.Where("case_type = ?", filters.CaseType)
	}
	if filters.Priority != "" && models.IsValidPriority(filters.Priority) {
		query = query.Where("priority = ?", filters.Priority)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			db.Where("case_number LIKE ?", pattern).
				Or("case_title LIKE ?", pattern).
				Or("description LIKE ?", pattern).
				Or("EXISTS (SELECT 1 FROM clients WHERE clients.id = cases.client_id AND clients.name LIKE ?)", pattern),
		)
	}

	query, pagination, err := paginate(query, &models.Case{}, page)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count cases: %w", err)
	}

	var cases []models.Case
	if err := query.
		Preload("Client").
		Preload("Court").
		Order("next_hearing_date DESC").
		Order("created_at DESC").
		Find(&cases).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to fetch cases: %w", err)
	}
	return cases, pagination, nil
}

// GetCase returns the case with its relationships if it belongs to the
// lawyer; ErrNotFound otherwise.
func GetCase(db *gorm.DB, lawyerID, caseID string) (*models.Case, error) {
	var caseRecord models.Case
	err := db.Where("lawyer_id = ?", lawyerID).
		Preload("Client").
		Preload("Court").
		Preload("Hearings", func(db *gorm.DB) *gorm.DB {
			return db.Order("hearing_date DESC")
		}).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("document_date DESC")
		}).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC")
		}).
		First(&caseRecord, "id = ?", caseID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}
	return &caseRecord, nil
}

// UpdateCaseStatus transitions a case to a new status.
func UpdateCaseStatus(db *gorm.DB, lawyerID, caseID, status string) (*models.Case, error) {
	if !models.IsValidCaseStatus(status) {
		return nil, NewValidationError("status", "invalid case status")
	}

	caseRecord, err := GetCase(db, lawyerID, caseID)
	if err != nil {
		return nil, err
	}

	if err := db.Model(caseRecord).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update case status: %w", err)
	}
	caseRecord.Status = status
	return caseRecord, nil
}

// DeleteCase removes a case and cascades to its hearings, documents and
// linked tasks in one transaction.
func DeleteCase(db *gorm.DB, lawyerID, caseID string) error {
	var caseRecord models.Case
	err := db.Where("lawyer_id = ?", lawyerID).First(&caseRecord, "id = ?", caseID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch case: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := deleteCaseChildren(tx, []string{caseRecord.ID}); err != nil {
			return err
		}
		if err := tx.Delete(&caseRecord).Error; err != nil {
			return fmt.Errorf("failed to delete case: %w", err)
		}
		return nil
	})
}

// deleteCaseChildren removes hearings, documents and linked tasks for
// the given case ids. Runs inside the caller's transaction.
func deleteCaseChildren(tx *gorm.DB, caseIDs []string) error {
	if err := tx.Where("case_id IN ?", caseIDs).Delete(&models.Hearing{}).Error; err != nil {
		return fmt.Errorf("failed to delete hearings: %w", err)
	}
	if err := tx.Where("case_id IN ?", caseIDs).Delete(&models.Document{}).Error; err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	if err := tx.Where("case_id IN ?", caseIDs).Delete(&models.TaskReminder{}).Error; err != nil {
		return fmt.Errorf("failed to delete tasks: %w", err)
	}
	return nil
}
