package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardHandler returns the lawyer's dashboard summary
func DashboardHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	cfg := getConfig(c)

	summary, err := services.GetDashboardSummary(db.DB, cfg.Location(), user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": summary})
}

// CalendarHandler returns the lawyer's hearings and tasks as calendar events
func CalendarHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	events, err := services.CalendarEvents(db.DB, user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}
