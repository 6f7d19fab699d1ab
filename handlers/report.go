package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CaseRegisterHandler streams the lawyer's case register as an xlsx file
func CaseRegisterHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	filters := services.CaseFilters{
		Status:   c.QueryParam("status"),
		CaseType: c.QueryParam("case_type"),
		Priority: c.QueryParam("priority"),
	}

	buf, err := services.BuildCaseRegister(db.DB, user.ID, filters)
	if err != nil {
		return serviceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+services.CaseRegisterFilename()+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
