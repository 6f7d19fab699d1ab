package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateClientHandler(t *testing.T) {
	database := setupTestDB(t)
	lawyer := createTestLawyer(t, database, "h_client_create")

	body := `{"name":"Ramesh Kumar","phone":"9876543210","address":"12 Court Road"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/clients", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")
	actAsUser(c, lawyer)

	err := CreateClientHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	client := payload["data"].(map[string]interface{})
	assert.Equal(t, "Ramesh Kumar", client["name"])
	assert.NotEmpty(t, client["id"])
}

func TestCreateClientHandlerValidation(t *testing.T) {
	database := setupTestDB(t)
	lawyer := createTestLawyer(t, database, "h_client_val")

	body := `{"phone":"9876543210","address":"12 Court Road"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/clients", strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")
	actAsUser(c, lawyer)

	err := CreateClientHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "name", payload["field"])
}

func TestListClientsHandlerScoped(t *testing.T) {
	database := setupTestDB(t)
	lawyer := createTestLawyer(t, database, "h_client_list")
	other := createTestLawyer(t, database, "h_client_other")
	createTestClient(t, database, lawyer.ID, "Mine One")
	createTestClient(t, database, lawyer.ID, "Mine Two")
	createTestClient(t, database, other.ID, "Theirs")

	_, c, rec := setupEcho(http.MethodGet, "/api/clients", nil)
	actAsUser(c, lawyer)

	err := ListClientsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data       []map[string]interface{} `json:"data"`
		Pagination map[string]interface{}   `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Len(t, payload.Data, 2)
	assert.EqualValues(t, 1, payload.Pagination["page"])
	assert.EqualValues(t, 2, payload.Pagination["total"])
}

func TestGetClientHandlerCrossTenant(t *testing.T) {
	database := setupTestDB(t)
	lawyer := createTestLawyer(t, database, "h_client_get")
	other := createTestLawyer(t, database, "h_client_get_o")
	foreign := createTestClient(t, database, other.ID, "Not Yours")

	_, c, rec := setupEcho(http.MethodGet, "/api/clients/"+foreign.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(foreign.ID)
	actAsUser(c, lawyer)

	err := GetClientHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteClientHandler(t *testing.T) {
	database := setupTestDB(t)
	lawyer := createTestLawyer(t, database, "h_client_del")
	client := createTestClient(t, database, lawyer.ID, "Goner")

	_, c, rec := setupEcho(http.MethodDelete, "/api/clients/"+client.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(client.ID)
	actAsUser(c, lawyer)

	err := DeleteClientHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
