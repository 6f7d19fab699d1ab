package handlers

import (
	"errors"
	"lawyer_diary_go/config"
	"lawyer_diary_go/services"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func getConfig(c echo.Context) *config.Config {
	cfg, _ := c.Get("config").(*config.Config)
	return cfg
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// serviceError maps service layer failures onto HTTP responses:
// validation problems become 400, missing or foreign records 404,
// credential failures 401, anything else 500.
func serviceError(c echo.Context, err error) error {
	if ve, ok := services.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": ve.Message,
			"field": ve.Field,
		})
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}

func listResponse(c echo.Context, items interface{}, pagination services.Pagination) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":       items,
		"pagination": pagination,
	})
}
