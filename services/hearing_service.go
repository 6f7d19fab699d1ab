package services

import (
	"fmt"
	"lawyer_diary_go/models"
	"time"

	"gorm.io/gorm"
)

// Date filter keywords for ListHearings
const (
	HearingFilterToday    = "today"
	HearingFilterTomorrow = "tomorrow"
	HearingFilterThisWeek = "this_week"
	HearingFilterUpcoming = "upcoming"
	HearingFilterPast     = "past"
	HearingFilterAll      = "all"
)

// HearingInput carries the fields accepted when scheduling a hearing.
// Date and time come in as separate form fields.
type HearingInput struct {
	CaseID            string `json:"case_id"`
	HearingDate       string `json:"hearing_date"`
	HearingTime       string `json:"hearing_time"`
	HearingType       string `json:"hearing_type"`
	CourtRoom         string `json:"court_room"`
	JudgeName         string `json:"judge_name"`
	Purpose           string `json:"purpose"`
	PreparationNotes  string `json:"preparation_notes"`
	DocumentsRequired string `json:"documents_required"`
	WitnessesRequired string `json:"witnesses_required"`
}

// HearingFilters are the optional constraints for ListHearings.
type HearingFilters struct {
	DateFilter string // one of the HearingFilter* keywords; default upcoming
	Status     string
	CaseID     string
}

// HearingOutcomeInput records what happened at a hearing.
type HearingOutcomeInput struct {
	Status   string `json:"status"`
	Outcome  string `json:"outcome"`
	NextDate string `json:"next_date"`
	NextTime string `json:"next_time"`
}

// CreateHearing schedules a hearing on a case the lawyer owns. The
// hearing timestamp is built from the date and time fields in the
// deployment timezone.
func CreateHearing(db *gorm.DB, loc *time.Location, lawyerID string, input HearingInput) (*models.Hearing, error) {
	if !models.IsValidHearingType(input.HearingType) {
		return nil, NewValidationError("hearing_type", "invalid hearing type")
	}
	if input.Purpose == "" {
		return nil, NewValidationError("purpose", "hearing purpose is required")
	}

	hearingDate, err := CombineDateTime(input.HearingDate, input.HearingTime, loc)
	if err != nil {
		return nil, NewValidationError("hearing_date", "invalid hearing date/time: expected YYYY-MM-DD and HH:MM")
	}

	// Case must belong to the caller.
	var caseRecord models.Case
	if err := db.Where("lawyer_id = ?", lawyerID).First(&caseRecord, "id = ?", input.CaseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewValidationError("case_id", "case not found")
		}
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}

	hearing := &models.Hearing{
		CaseID:            caseRecord.ID,
		HearingDate:       hearingDate,
		HearingType:       input.HearingType,
		CourtRoom:         input.CourtRoom,
		JudgeName:         input.JudgeName,
		Status:            models.HearingStatusScheduled,
		Purpose:           SanitizeText(input.Purpose),
		PreparationNotes:  SanitizeText(input.PreparationNotes),
		DocumentsRequired: SanitizeText(input.DocumentsRequired),
		WitnessesRequired: SanitizeText(input.WitnessesRequired),
	}
	if err := db.Create(hearing).Error; err != nil {
		return nil, fmt.Errorf("failed to create hearing: %w", err)
	}
	return hearing, nil
}

// lawyerHearings scopes a hearings query to cases owned by the lawyer.
// Ownership of a hearing is transitive through its case.
func lawyerHearings(db *gorm.DB, lawyerID string) *gorm.DB {
	return db.Model(&models.Hearing{}).
		Joins("JOIN cases ON cases.id = hearings.case_id").
		Where("cases.lawyer_id = ?", lawyerID)
}

// ListHearings returns one page of the lawyer's hearings ordered by
// hearing date. Date keywords compare calendar days in loc.
func ListHearings(db *gorm.DB, loc *time.Location, lawyerID string, filters HearingFilters, page int) ([]models.Hearing, Pagination, error) {
	query := lawyerHearings(db, lawyerID)

	now := time.Now()
	todayStart, todayEnd := DayBounds(now, loc)

	dateFilter := filters.DateFilter
	if dateFilter == "" {
		dateFilter = HearingFilterUpcoming
	}
	switch dateFilter {
	case HearingFilterToday:
		query = query.Where("hearing_date >= ? AND hearing_date < ?", todayStart, todayEnd)
	case HearingFilterTomorrow:
		query = query.Where("hearing_date >= ? AND hearing_date < ?", todayEnd, todayEnd.AddDate(0, 0, 1))
	case HearingFilterThisWeek:
		query = query.Where("hearing_date >= ? AND hearing_date < ?", todayStart, todayStart.AddDate(0, 0, 8))
	case HearingFilterUpcoming:
		query = query.Where("hearing_date >= ?", todayStart)
	case HearingFilterPast:
		query = query.Where("hearing_date < ?", todayStart)
	case HearingFilterAll:
		// no date constraint
	default:
		return nil, Pagination{}, NewValidationError("date_filter", "invalid date filter")
	}

	if filters.Status != "" && models.IsValidHearingStatus(filters.Status) {
		query = query.Where("hearings.status = ?", filters.Status)
	}
	if filters.CaseID != "" {
		query = query.Where("hearings.case_id = ?", filters.CaseID)
	}

	query, pagination, err := paginate(query, &models.Hearing{}, page)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count hearings: %w", err)
	}

	var hearings []models.Hearing
	if err := query.
		Preload("Case").
		Preload("Case.Client").
		Order("hearing_date ASC").
		Find(&hearings).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to fetch hearings: %w", err)
	}
	return hearings, pagination, nil
}

// GetHearing returns the hearing if its case belongs to the lawyer.
func GetHearing(db *gorm.DB, lawyerID, hearingID string) (*models.Hearing, error) {
	var hearing models.Hearing
	err := db.
		Joins("JOIN cases ON cases.id = hearings.case_id").
		Where("cases.lawyer_id = ?", lawyerID).
		Preload("Case").
		Preload("Case.Client").
		First(&hearing, "hearings.id = ?", hearingID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch hearing: %w", err)
	}
	return &hearing, nil
}

// RecordHearingOutcome updates a hearing's status and outcome, and the
// next date when adjourned.
func RecordHearingOutcome(db *gorm.DB, loc *time.Location, lawyerID, hearingID string, input HearingOutcomeInput) (*models.Hearing, error) {
	if !models.IsValidHearingStatus(input.Status) {
		return nil, NewValidationError("status", "invalid hearing status")
	}

	hearing, err := GetHearing(db, lawyerID, hearingID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":  input.Status,
		"outcome": SanitizeText(input.Outcome),
	}
	if input.NextDate != "" {
		nextTime := input.NextTime
		if nextTime == "" {
			nextTime = "10:00"
		}
		nextDate, err := CombineDateTime(input.NextDate, nextTime, loc)
		if err != nil {
			return nil, NewValidationError("next_date", "invalid next hearing date/time")
		}
		updates["next_date"] = nextDate
	}

	if err := db.Model(hearing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update hearing: %w", err)
	}
	return hearing, nil
}
