package services

import (
	"errors"
	"testing"
	"time"

	"lawyer_diary_go/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateHearingDefaultsToScheduled(t *testing.T) {
	db := setupTestDB()
	loc := time.UTC
	lawyer := createTestLawyer(db, "adv_h_create")
	court := createTestCourt(db)
	client := createTestClient(db, lawyer.ID, "Kumar")
	caseRecord := createTestCase(db, lawyer.ID, client.ID, court.ID, "H-CR-1")

	hearing, err := CreateHearing(db, loc, lawyer.ID, HearingInput{
		CaseID:      caseRecord.ID,
		HearingDate: "2026-10-05",
		HearingTime: "14:30",
		HearingType: models.HearingTypeArguments,
		Purpose:     "Final arguments",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.HearingStatusScheduled, hearing.Status)
	assert.Equal(t, 14, hearing.HearingDate.In(loc).Hour())
	assert.Equal(t, 30, hearing.HearingDate.In(loc).Minute())
}

func TestCreateHearingValidation(t *testing.T) {
	db := setupTestDB()
	loc := time.UTC
	lawyer := createTestLawyer(db, "adv_h_val")
	court := createTestCourt(db)
	client := createTestClient(db, lawyer.ID, "Kumar")
	caseRecord := createTestCase(db, lawyer.ID, client.ID, court.ID, "H-VAL-1")

	// Invalid hearing type
	_, err := CreateHearing(db, loc, lawyer.ID, HearingInput{
		CaseID: caseRecord.ID, HearingDate: "2026-10-05", HearingTime: "10:00",
		HearingType: "COFFEE_BREAK", Purpose: "x",
	})
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "hearing_type", ve.Field)

	// Missing purpose
	_, err = CreateHearing(db, loc, lawyer.ID, HearingInput{
		CaseID: caseRecord.ID, HearingDate: "2026-10-05", HearingTime: "10:00",
		HearingType: models.HearingTypeArguments,
	})
	ve, ok = AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "purpose", ve.Field)

	// Malformed date
	_, err = CreateHearing(db, loc, lawyer.ID, HearingInput{
		CaseID: caseRecord.ID, HearingDate: "05/10/2026", HearingTime: "10:00",
		HearingType: models.HearingTypeArguments, Purpose: "x",
	})
	ve, ok = AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "hearing_date", ve.Field)
}

func TestCreateHearingForeignCaseRejected(t *testing.T) {
	db := setupTestDB()
	loc := time.UTC
	lawyerA := createTestLawyer(db, "adv_h_a")
	lawyerB := createTestLawyer(db, "adv_h_b")
	court := createTestCourt(db)
	client := createTestClient(db, lawyerB.ID, "Kumar")
	foreignCase := createTestCase(db, lawyerB.ID, client.ID, court.ID, "H-F-1")

	_, err := CreateHearing(db, loc, lawyerA.ID, HearingInput{
		CaseID: foreignCase.ID, HearingDate: "2026-10-05", HearingTime: "10:00",
		HearingType: models.HearingTypeArguments, Purpose: "x",
	})
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "case_id", ve.Field)
}

func TestListHearingsDateFilters(t *testing.T) {
	db := setupTestDB()
	loc := time.UTC
	lawyer := createTestLawyer(db, "adv_h_list")
	court := createTestCourt(db)
	client := createTestClient(db, lawyer.ID, "Kumar")
	caseRecord := createTestCase(db, lawyer.ID, client.ID, court.ID, "H-L-1")

	now := time.Now().In(loc)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	for _, d := range []string{day(-3), day(0), day(1), day(10)} {
		_, err := CreateHearing(db, loc, lawyer.ID, HearingInput{
			CaseID: caseRecord.ID, HearingDate: d, HearingTime: "12:00",
			HearingType: models.HearingTypeMention, Purpose: "Mention",
		})
		assert.NoError(t, err)
	}

	check := func(filter string, want int) {
		hearings, _, err := ListHearings(db, loc, lawyer.ID, HearingFilters{DateFilter: filter}, 1)
		assert.NoError(t, err, filter)
		assert.Len(t, hearings, want, filter)
	}

	check(HearingFilterToday, 1)
	check(HearingFilterTomorrow, 1)
	check(HearingFilterPast, 1)
	check(HearingFilterUpcoming, 3)
	check(HearingFilterAll, 4)

	// Unknown keyword is a validation error
	_, _, err := ListHearings(db, loc, lawyer.ID, HearingFilters{DateFilter: "someday"}, 1)
	_, ok := AsValidationError(err)
	assert.True(t, ok)
}

func TestListHearingsScopedAndOrdered(t *testing.T) {
	db := setupTestDB()
	loc := time.UTC
	lawyerA := createTestLawyer(db, "adv_h_sc_a")
	lawyerB := createTestLawyer(db, "adv_h_sc_b")
	court := createTestCourt(db)
	clientA := createTestClient(db, lawyerA.ID, "Kumar")
	clientB := createTestClient(db, lawyerB.ID, "Kumar")
	caseA := createTestCase(db, lawyerA.ID, clientA.ID, court.ID, "H-SC-A")
	caseB := createTestCase(db, lawyerB.ID, clientB.ID, court.ID, "H-SC-B")

	for _, h := range []struct {
		lawyerID string
		caseID   string
		date     string
	}{
		{lawyerA.ID, caseA.ID, "2026-12-20"},
		{lawyerA.ID, caseA.ID, "2026-12-05"},
		{lawyerB.ID, caseB.ID, "2026-12-10"},
	} {
		_, err := CreateHearing(db, loc, h.lawyerID, HearingInput{
			CaseID: h.caseID, HearingDate: h.date, HearingTime: "10:00",
			HearingType: models.HearingTypeMention, Purpose: "Mention",
		})
		assert.NoError(t, err)
	}

	hearings, _, err := ListHearings(db, loc, lawyerA.ID, HearingFilters{DateFilter: HearingFilterAll}, 1)
	assert.NoError(t, err)
	assert.Len(t, hearings, 2)
	assert.True(t, hearings[0].HearingDate.Before(hearings[1].HearingDate))
	assert.Equal(t, "Kumar", hearings[0].Case.Client.Name)
}

func TestRecordHearingOutcome(t *testing.T) {
	db := setupTestDB()
	loc := time.UTC
	lawyer := createTestLawyer(db, "adv_h_out")
	court := createTestCourt(db)
	client := createTestClient(db, lawyer.ID, "Kumar")
	caseRecord := createTestCase(db, lawyer.ID, client.ID, court.ID, "H-O-1")

	hearing, err := CreateHearing(db, loc, lawyer.ID, HearingInput{
		CaseID: caseRecord.ID, HearingDate: "2026-10-05", HearingTime: "10:00",
		HearingType: models.HearingTypeArguments, Purpose: "Arguments",
	})
	assert.NoError(t, err)

	updated, err := RecordHearingOutcome(db, loc, lawyer.ID, hearing.ID, HearingOutcomeInput{
		Status:   models.HearingStatusAdjourned,
		Outcome:  "Adjourned on request of opposite counsel",
		NextDate: "2026-11-12",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.HearingStatusAdjourned, updated.Status)
	assert.NotNil(t, updated.NextDate)
	// Default next hearing time is 10:00
	assert.Equal(t, 10, updated.NextDate.In(loc).Hour())

	// Invalid status rejected
	_, err = RecordHearingOutcome(db, loc, lawyer.ID, hearing.ID, HearingOutcomeInput{Status: "MAYBE"})
	_, ok := AsValidationError(err)
	assert.True(t, ok)

	// Foreign hearing indistinguishable from missing
	other := createTestLawyer(db, "adv_h_out_b")
	_, err = RecordHearingOutcome(db, loc, other.ID, hearing.ID, HearingOutcomeInput{
		Status: models.HearingStatusCompleted,
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}
