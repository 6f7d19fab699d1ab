package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListCourtsHandler returns one page of the shared court directory
func ListCourtsHandler(c echo.Context) error {
	filters := services.CourtFilters{
		CourtType: c.QueryParam("court_type"),
		State:     c.QueryParam("state"),
		Search:    c.QueryParam("search"),
	}

	courts, pagination, err := services.ListCourts(db.DB, filters, pageParam(c))
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, courts, pagination)
}

// GetCourtHandler returns a single court
func GetCourtHandler(c echo.Context) error {
	court, err := services.GetCourt(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": court})
}
