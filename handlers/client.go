package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateClientHandler creates a client for the authenticated lawyer
func CreateClientHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	var input services.ClientInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	client, err := services.CreateClient(db.DB, user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": client})
}

// ListClientsHandler returns one page of the lawyer's clients
func ListClientsHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	filters := services.ClientFilters{
		Search:          c.QueryParam("search"),
		IncludeInactive: c.QueryParam("include_inactive") == "true",
	}

	clients, pagination, err := services.ListClients(db.DB, user.ID, filters, pageParam(c))
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, clients, pagination)
}

// GetClientHandler returns a single client owned by the lawyer
func GetClientHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	client, err := services.GetClient(db.DB, user.ID, c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": client})
}

// DeleteClientHandler removes a client and all dependent records
func DeleteClientHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	if err := services.DeleteClient(db.DB, user.ID, c.Param("id")); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
