package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document type constants
const (
	DocumentTypePlaint           = "PLAINT"
	DocumentTypeWrittenStatement = "WRITTEN_STATEMENT"
	DocumentTypeAffidavit        = "AFFIDAVIT"
	DocumentTypeEvidence         = "EVIDENCE"
	DocumentTypeJudgment         = "JUDGMENT"
	DocumentTypeNotice           = "NOTICE"
	DocumentTypeSummons          = "SUMMONS"
	DocumentTypeApplication      = "APPLICATION"
	DocumentTypeReply            = "REPLY"
	DocumentTypeRejoinder        = "REJOINDER"
	DocumentTypeVakalatnama      = "VAKALATNAMA"
	DocumentTypePowerOfAttorney  = "POWER_OF_ATTORNEY"
	DocumentTypeContract         = "CONTRACT"
	DocumentTypeCorrespondence   = "CORRESPONDENCE"
	DocumentTypeReceipt          = "RECEIPT"
	DocumentTypeOther            = "OTHER"
)

// Document records metadata about a case document. Only the file path
// and size are tracked, never the file contents.
type Document struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"case,omitempty"`

	Title        string `gorm:"not null;size:200" json:"title"`
	DocumentType string `gorm:"not null;size:20" json:"document_type"`
	Description  string `gorm:"type:text" json:"description"`

	FilePath string `gorm:"size:500" json:"file_path"`
	FileSize *int64 `json:"file_size,omitempty"`

	DocumentDate    time.Time `gorm:"not null" json:"document_date"`
	ReceivedDate    time.Time `gorm:"not null" json:"received_date"`
	IsOriginal      bool      `gorm:"not null;default:false" json:"is_original"`
	IsCertifiedCopy bool      `gorm:"not null;default:false" json:"is_certified_copy"`
}

// BeforeCreate hook to generate UUID and default the received date to
// the creation date.
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.ReceivedDate.IsZero() {
		d.ReceivedDate = time.Now()
	}
	return nil
}

// TableName specifies the table name for Document model
func (Document) TableName() string {
	return "documents"
}

var validDocumentTypes = map[string]bool{
	DocumentTypePlaint: true, DocumentTypeWrittenStatement: true,
	DocumentTypeAffidavit: true, DocumentTypeEvidence: true,
	DocumentTypeJudgment: true, DocumentTypeNotice: true,
	DocumentTypeSummons: true, DocumentTypeApplication: true,
	DocumentTypeReply: true, DocumentTypeRejoinder: true,
	DocumentTypeVakalatnama: true, DocumentTypePowerOfAttorney: true,
	DocumentTypeContract: true, DocumentTypeCorrespondence: true,
	DocumentTypeReceipt: true, DocumentTypeOther: true,
}

// IsValidDocumentType checks if the document type is valid
func IsValidDocumentType(documentType string) bool {
	return validDocumentTypes[documentType]
}
