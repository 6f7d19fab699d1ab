package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestCaseRegisterHandler(t *testing.T) {
	database := setupTestDB(t)
	lawyer := createTestLawyer(t, database, "h_report")
	court := createTestCourt(t, database)
	client := createTestClient(t, database, lawyer.ID, "Report Client")
	createTestCase(t, database, lawyer.ID, client.ID, court.ID, "HR-1")

	_, c, rec := setupEcho(http.MethodGet, "/api/reports/case-register", nil)
	actAsUser(c, lawyer)

	err := CaseRegisterHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Case Register")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "HR-1", rows[1][0])
}
