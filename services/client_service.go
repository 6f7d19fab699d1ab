package services

import (
	"fmt"
	"lawyer_diary_go/models"

	"gorm.io/gorm"
)

// ClientInput carries the fields accepted when registering a client.
type ClientInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Occupation   string `json:"occupation"`
	AadharNumber string `json:"aadhar_number"`
	PANNumber    string `json:"pan_number"`
	Notes        string `json:"notes"`
}

// ClientFilters are the optional constraints for ListClients.
type ClientFilters struct {
	Search          string
	IncludeInactive bool
}

// CreateClient registers a new client for the lawyer. The (lawyer, name)
// pair must be unique.
func CreateClient(db *gorm.DB, lawyerID string, input ClientInput) (*models.Client, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "client name is required")
	}
	if input.Phone == "" {
		return nil, NewValidationError("phone", "phone number is required")
	}
	if input.Address == "" {
		return nil, NewValidationError("address", "address is required")
	}

	var count int64
	if err := db.Model(&models.Client{}).
		Where("lawyer_id = ? AND name = ?", lawyerID, input.Name).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check client name: %w", err)
	}
	if count > 0 {
		return nil, NewValidationError("name", "a client with this name already exists")
	}

	client := &models.Client{
		LawyerID:     lawyerID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      SanitizeText(input.Address),
		Occupation:   input.Occupation,
		AadharNumber: input.AadharNumber,
		PANNumber:    input.PANNumber,
		Notes:        SanitizeText(input.Notes),
		IsActive:     true,
	}
	if err := db.Create(client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// ListClients returns one page of the lawyer's clients, name-ordered.
// Search matches name, email and phone case-insensitively.
func ListClients(db *gorm.DB, lawyerID string, filters ClientFilters, page int) ([]models.Client, Pagination, error) {
	query := db.Where("lawyer_id = ?", lawyerID)
	if !filters.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			db.Where("name LIKE ?", pattern).
				Or("email LIKE ?", pattern).
				Or("phone LIKE ?", pattern),
		)
	}

	query, pagination, err := paginate(query, &models.Client{}, page)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count clients: %w", err)
	}

	var clients []models.Client
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return clients, pagination, nil
}

// GetClient returns the client if it belongs to the lawyer. A missing id
// and another lawyer's client both yield ErrNotFound.
func GetClient(db *gorm.DB, lawyerID, clientID string) (*models.Client, error) {
	var client models.Client
	err := db.Where("lawyer_id = ?", lawyerID).First(&client, "id = ?", clientID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return &client, nil
}

// DeleteClient removes a client and cascades to its cases (and their
// hearings, documents and linked tasks).
func DeleteClient(db *gorm.DB, lawyerID, clientID string) error {
	client, err := GetClient(db, lawyerID, clientID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var caseIDs []string
		if err := tx.Model(&models.Case{}).
			Where("client_id = ?", client.ID).
			Pluck("id", &caseIDs).Error; err != nil {
			return fmt.Errorf("failed to list client cases: %w", err)
		}

		if len(caseIDs) > 0 {
			if err := deleteCaseChildren(tx, caseIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", caseIDs).Delete(&models.Case{}).Error; err != nil {
				return fmt.Errorf("failed to delete client cases: %w", err)
			}
		}

		if err := tx.Delete(client).Error; err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}
		return nil
	})
}
