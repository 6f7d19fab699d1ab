package services

import (
	"errors"
	"testing"

	"lawyer_diary_go/models"

	"github.com/stretchr/testify/assert"
)

func validDocumentInput(caseID string) DocumentInput {
	size := int64(2048)
	return DocumentInput{
		CaseID:       caseID,
		Title:        "Plaint copy",
		DocumentType: models.DocumentTypePlaint,
		Description:  "Certified copy of the plaint",
		FilePath:     "uploads/plaint.pdf",
		FileSize:     &size,
		DocumentDate: "2026-01-20",
	}
}

func TestCreateDocument(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_doc")
	court := createTestCourt(db)
	client := createTestClient(db, lawyer.ID, "Doc Client")
	caseRecord := createTestCase(db, lawyer.ID, client.ID, court.ID, "DOC-1")

	input := validDocumentInput(caseRecord.ID)
	input.ReceivedDate = "2026-01-22"
	input.IsCertifiedCopy = true

	document, err := CreateDocument(db, lawyer.ID, input)
	assert.NoError(t, err)
	assert.Equal(t, caseRecord.ID, document.CaseID)
	assert.Equal(t, "Plaint copy", document.Title)
	assert.True(t, document.IsCertifiedCopy)
	assert.Equal(t, 20, document.DocumentDate.Day())
	assert.Equal(t, 22, document.ReceivedDate.Day())
	assert.EqualValues(t, 2048, *document.FileSize)
}

func TestCreateDocumentValidation(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_doc_val")
	court := createTestCourt(db)
	client := createTestClient(db, lawyer.ID, "Doc Val Client")
	caseRecord := createTestCase(db, lawyer.ID, client.ID, court.ID, "DOC-V-1")

	cases := []struct {
		name   string
		mutate func(*DocumentInput)
		field  string
	}{
		{"missing title", func(i *DocumentInput) { i.Title = "" }, "title"},
		{"invalid type", func(i *DocumentInput) { i.DocumentType = "SCROLL" }, "document_type"},
		{"bad document date", func(i *DocumentInput) { i.DocumentDate = "20-01-2026" }, "document_date"},
		{"bad received date", func(i *DocumentInput) { i.ReceivedDate = "soon" }, "received_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validDocumentInput(caseRecord.ID)
			tc.mutate(&input)
			_, err := CreateDocument(db, lawyer.ID, input)
			ve, ok := AsValidationError(err)
			assert.True(t, ok)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestCreateDocumentForeignCaseRejected(t *testing.T) {
	db := setupTestDB()
	lawyerA := createTestLawyer(db, "adv_doc_a")
	lawyerB := createTestLawyer(db, "adv_doc_b")
	court := createTestCourt(db)
	client := createTestClient(db, lawyerB.ID, "Doc B Client")
	foreignCase := createTestCase(db, lawyerB.ID, client.ID, court.ID, "DOC-F-1")

	_, err := CreateDocument(db, lawyerA.ID, validDocumentInput(foreignCase.ID))
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "case_id", ve.Field)
}

func TestListDocumentsScopedAndFiltered(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_doc_list")
	other := createTestLawyer(db, "adv_doc_list_o")
	court := createTestCourt(db)
	client := createTestClient(db, lawyer.ID, "Doc List Client")
	otherClient := createTestClient(db, other.ID, "Doc Other Client")
	caseA := createTestCase(db, lawyer.ID, client.ID, court.ID, "DL-1")
	caseB := createTestCase(db, lawyer.ID, client.ID, court.ID, "DL-2")
	foreignCase := createTestCase(db, other.ID, otherClient.ID, court.ID, "DL-3")

	add := func(caseID, title, docType, date string) {
		input := DocumentInput{
			CaseID:       caseID,
			Title:        title,
			DocumentType: docType,
			DocumentDate: date,
		}
		_, err := CreateDocument(db, lawyer.ID, input)
		assert.NoError(t, err)
	}

	add(caseA.ID, "Plaint", models.DocumentTypePlaint, "2026-01-10")
	add(caseA.ID, "Reply affidavit", models.DocumentTypeAffidavit, "2026-02-10")
	add(caseB.ID, "Summons", models.DocumentTypeSummons, "2026-03-01")

	foreignInput := validDocumentInput(foreignCase.ID)
	_, err := CreateDocument(db, other.ID, foreignInput)
	assert.NoError(t, err)

	documents, _, err := ListDocuments(db, lawyer.ID, DocumentFilters{}, 1)
	assert.NoError(t, err)
	assert.Len(t, documents, 3)
	// Most recent document date first
	assert.Equal(t, "Summons", documents[0].Title)
	assert.Equal(t, "Plaint", documents[2].Title)

	documents, _, err = ListDocuments(db, lawyer.ID, DocumentFilters{CaseID: caseA.ID}, 1)
	assert.NoError(t, err)
	assert.Len(t, documents, 2)

	documents, _, err = ListDocuments(db, lawyer.ID, DocumentFilters{DocumentType: models.DocumentTypeSummons}, 1)
	assert.NoError(t, err)
	assert.Len(t, documents, 1)

	documents, _, err = ListDocuments(db, lawyer.ID, DocumentFilters{Search: "affidavit"}, 1)
	assert.NoError(t, err)
	assert.Len(t, documents, 1)
	assert.Equal(t, "Reply affidavit", documents[0].Title)
}

func TestGetDocumentCrossTenant(t *testing.T) {
	db := setupTestDB()
	lawyerA := createTestLawyer(db, "adv_doc_get_a")
	lawyerB := createTestLawyer(db, "adv_doc_get_b")
	court := createTestCourt(db)
	client := createTestClient(db, lawyerB.ID, "Doc Get Client")
	caseRecord := createTestCase(db, lawyerB.ID, client.ID, court.ID, "DG-1")

	document, err := CreateDocument(db, lawyerB.ID, validDocumentInput(caseRecord.ID))
	assert.NoError(t, err)

	found, err := GetDocument(db, lawyerB.ID, document.ID)
	assert.NoError(t, err)
	assert.Equal(t, "DG-1", found.Case.CaseNumber)

	_, err = GetDocument(db, lawyerA.ID, document.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteCaseRemovesDocuments(t *testing.T) {
	db := setupTestDB()
	lawyer := createTestLawyer(db, "adv_doc_cascade")
	court := createTestCourt(db)
	client := createTestClient(db, lawyer.ID, "Cascade Client")
	caseRecord := createTestCase(db, lawyer.ID, client.ID, court.ID, "DC-1")

	_, err := CreateDocument(db, lawyer.ID, validDocumentInput(caseRecord.ID))
	assert.NoError(t, err)

	assert.NoError(t, DeleteCase(db, lawyer.ID, caseRecord.ID))

	var count int64
	db.Model(&models.Document{}).Where("case_id = ?", caseRecord.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
