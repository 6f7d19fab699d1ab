package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

type caseStatusRequest struct {
	Status string `json:"status"`
}

// CreateCaseHandler creates a case for the authenticated lawyer
func CreateCaseHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	cfg := getConfig(c)

	var input services.CaseInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	caseRecord, err := services.CreateCase(db.DB, cfg.Location(), user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": caseRecord})
}

// ListCasesHandler returns one page of the lawyer's cases
func ListCasesHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	filters := services.CaseFilters{
		Status:   c.QueryParam("status"),
		CaseType: c.QueryParam("case_type"),
		Priority: c.QueryParam("priority"),
		Search:   c.QueryParam("search"),
	}

	cases, pagination, err := services.ListCases(db.DB, user.ID, filters, pageParam(c))
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, cases, pagination)
}

// GetCaseHandler returns a case with its hearings, documents and tasks
func GetCaseHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	caseRecord, err := services.GetCase(db.DB, user.ID, c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": caseRecord})
}

// UpdateCaseStatusHandler changes a case's status
func UpdateCaseStatusHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	var req caseStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	caseRecord, err := services.UpdateCaseStatus(db.DB, user.ID, c.Param("id"), req.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": caseRecord})
}

// DeleteCaseHandler removes a case and all dependent records
func DeleteCaseHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	if err := services.DeleteCase(db.DB, user.ID, c.Param("id")); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
