package services

import (
	"fmt"
	"lawyer_diary_go/models"

	"gorm.io/gorm"
)

// DocumentInput carries the metadata accepted when recording a document.
// Only path and size are stored, never file contents.
type DocumentInput struct {
	CaseID          string `json:"case_id"`
	Title           string `json:"title"`
	DocumentType    string `json:"document_type"`
	Description     string `json:"description"`
	FilePath        string `json:"file_path"`
	FileSize        *int64 `json:"file_size"`
	DocumentDate    string `json:"document_date"`
	ReceivedDate    string `json:"received_date"`
	IsOriginal      bool   `json:"is_original"`
	IsCertifiedCopy bool   `json:"is_certified_copy"`
}

// DocumentFilters are the optional constraints for ListDocuments.
type DocumentFilters struct {
	CaseID       string
	DocumentType string
	Search       string
}

// CreateDocument records document metadata against a case the lawyer owns.
func CreateDocument(db *gorm.DB, lawyerID string, input DocumentInput) (*models.Document, error) {
	if input.Title == "" {
		return nil, NewValidationError("title", "document title is required")
	}
	if !models.IsValidDocumentType(input.DocumentType) {
		return nil, NewValidationError("document_type", "invalid document type")
	}

	documentDate, err := ParseDate(input.DocumentDate)
	if err != nil {
		return nil, NewValidationError("document_date", "invalid document date: expected YYYY-MM-DD")
	}

	var caseRecord models.Case
	if err := db.Where("lawyer_id = ?", lawyerID).First(&caseRecord, "id = ?", input.CaseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewValidationError("case_id", "case not found")
		}
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}

	document := &models.Document{
		CaseID:          caseRecord.ID,
		Title:           input.Title,
		DocumentType:    input.DocumentType,
		Description:     SanitizeText(input.Description),
		FilePath:        input.FilePath,
		FileSize:        input.FileSize,
		DocumentDate:    documentDate,
		IsOriginal:      input.IsOriginal,
		IsCertifiedCopy: input.IsCertifiedCopy,
	}

	if input.ReceivedDate != "" {
		receivedDate, err := ParseDate(input.ReceivedDate)
		if err != nil {
			return nil, NewValidationError("received_date", "invalid received date: expected YYYY-MM-DD")
		}
		document.ReceivedDate = receivedDate
	}

	if err := db.Create(document).Error; err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return document, nil
}

// ListDocuments returns one page of document metadata for cases the
// lawyer owns, most recent document date first.
func ListDocuments(db *gorm.DB, lawyerID string, filters DocumentFilters, page int) ([]models.Document, Pagination, error) {
	query := db.Model(&models.Document{}).
		Joins("JOIN cases ON cases.id = documents.case_id").
		Where("cases.lawyer_id = ?", lawyerID)

	if filters.CaseID != "" {
		query = query.Where("documents.case_id = ?", filters.CaseID)
	}
	if filters.DocumentType != "" && models.IsValidDocumentType(filters.DocumentType) {
		query = query.Where("documents.document_type = ?", filters.DocumentType)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			db.Where("documents.title LIKE ?", pattern).
				Or("documents.description LIKE ?", pattern),
		)
	}

	query, pagination, err := paginate(query, &models.Document{}, page)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count documents: %w", err)
	}

	var documents []models.Document
	if err := query.
		Preload("Case").
		Order("document_date DESC").
		Find(&documents).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to fetch documents: %w", err)
	}
	return documents, pagination, nil
}

// GetDocument returns the document if its case belongs to the lawyer.
func GetDocument(db *gorm.DB, lawyerID, documentID string) (*models.Document, error) {
	var document models.Document
	err := db.
		Joins("JOIN cases ON cases.id = documents.case_id").
		Where("cases.lawyer_id = ?", lawyerID).
		Preload("Case").
		First(&document, "documents.id = ?", documentID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return &document, nil
}
