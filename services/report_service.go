package services

import (
	"bytes"
	"fmt"
	"lawyer_diary_go/models"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var caseRegisterHeaders = []string{
	"Case Number",
	"Case Title",
	"Client",
	"Court",
	"Case Type",
	"Status",
	"Priority",
	"Filing Date",
	"Next Hearing",
	"Fees Charged",
	"Fees Received",
	"Pending Fees",
}

// BuildCaseRegister exports the lawyer's case register as an xlsx
// workbook, applying the same filters as the case list.
func BuildCaseRegister(db *gorm.DB, lawyerID string, filters CaseFilters) (*bytes.Buffer, error) {
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

	var cases []models.Case
	if err := query.Order("filing_date ASC").
		Preload("Client").Preload("Court").
		Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cases for register: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Case Register"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, header := range caseRegisterHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	dateFmt := "2006-01-02"
	for rowIdx, c := range cases {
		row := rowIdx + 2
		nextHearing := ""
		if c.NextHearingDate != nil {
			nextHearing = c.NextHearingDate.Format(dateFmt)
		}
		feesCharged := 0.0
		if c.FeesCharged != nil {
			feesCharged = *c.FeesCharged
		}
		values := []interface{}{
			c.CaseNumber,
			c.CaseTitle,
			c.Client.Name,
			c.Court.Name,
			c.CaseType,
			c.Status,
			c.Priority,
			c.FilingDate.Format(dateFmt),
			nextHearing,
			feesCharged,
			c.FeesReceived,
			c.PendingFees(),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetColWidth(sheet, "A", "L", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write case register: %w", err)
	}
	return buf, nil
}

// CaseRegisterFilename builds the download name with the current date.
func CaseRegisterFilename() string {
	return fmt.Sprintf("case_register_%s.xlsx", time.Now().Format("20060102"))
}
