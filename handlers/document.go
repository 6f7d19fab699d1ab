package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateDocumentHandler records document metadata on a case
func CreateDocumentHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	var input services.DocumentInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	document, err := services.CreateDocument(db.DB, user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": document})
}

// ListDocumentsHandler returns one page of the lawyer's documents
func ListDocumentsHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	filters := services.DocumentFilters{
		CaseID:       c.QueryParam("case_id"),
		DocumentType: c.QueryParam("document_type"),
		Search:       c.QueryParam("search"),
	}

	documents, pagination, err := services.ListDocuments(db.DB, user.ID, filters, pageParam(c))
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, documents, pagination)
}

// GetDocumentHandler returns a single document on one of the lawyer's cases
func GetDocumentHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	document, err := services.GetDocument(db.DB, user.ID, c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": document})
}
