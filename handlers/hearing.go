package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateHearingHandler schedules a hearing on one of the lawyer's cases
func CreateHearingHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	cfg := getConfig(c)

	var input services.HearingInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	hearing, err := services.CreateHearing(db.DB, cfg.Location(), user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": hearing})
}

// ListHearingsHandler returns one page of the lawyer's hearings
func ListHearingsHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	cfg := getConfig(c)

	filters := services.HearingFilters{
		DateFilter: c.QueryParam("date_filter"),
		Status:     c.QueryParam("status"),
		CaseID:     c.QueryParam("case_id"),
	}

	hearings, pagination, err := services.ListHearings(db.DB, cfg.Location(), user.ID, filters, pageParam(c))
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, hearings, pagination)
}

// GetHearingHandler returns a single hearing on one of the lawyer's cases
func GetHearingHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	hearing, err := services.GetHearing(db.DB, user.ID, c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": hearing})
}

// RecordHearingOutcomeHandler records the result of a hearing
func RecordHearingOutcomeHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	cfg := getConfig(c)

	var input services.HearingOutcomeInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	hearing, err := services.RecordHearingOutcome(db.DB, cfg.Location(), user.ID, c.Param("id"), input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": hearing})
}
