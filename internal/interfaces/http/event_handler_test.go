package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCreateYListado(t *testing.T) {
	app := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/events/create", map[string]any{
		"title":      "Fair",
		"start_date": "2024-05-01T00:00:00",
		"end_date":   "2024-05-02T00:00:00",
		"created_by": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Event created successfully!", body["message"])

	resp = doJSON(t, app, http.MethodGet, "/events/getall", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	require.Contains(t, body, "events")
	events := body["events"].([]any)
	require.Len(t, events, 1)
	first := events[0].(map[string]any)
	assert.Equal(t, "Fair", first["title"])
	assert.Equal(t, float64(1), first["created_by"])
	assert.Equal(t, "2024-05-01T00:00:00", first["start_date"])
	assert.NotContains(t, first, "is_active")
}

func TestEventCreate_CamposFaltantes(t *testing.T) {
	app := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/events/create", map[string]any{
		"description": "sin lo demás",
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Title, start_date, end_date, and created_by are required.", body["message"])
}

func TestEventCreate_FechaIlegible(t *testing.T) {
	app := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/events/create", map[string]any{
		"title":      "Fair",
		"start_date": "mañana",
		"end_date":   "2024-05-02T00:00:00",
		"created_by": 1,
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid date format.", body["message"])
}

func TestEventDelete_OK(t *testing.T) {
	app := buildApp()
	resp := doJSON(t, app, http.MethodPost, "/events/create", map[string]any{
		"title":      "Fair",
		"start_date": "2024-05-01T00:00:00",
		"end_date":   "2024-05-02T00:00:00",
		"created_by": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/events/delete/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Event deleted successfully!", body["message"])

	resp = doJSON(t, app, http.MethodGet, "/events/getall", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Empty(t, body["events"], "tras el delete la lista debe refrescarse")
}

func TestEventDelete_Inexistente(t *testing.T) {
	app := buildApp()

	resp := doJSON(t, app, http.MethodDelete, "/events/delete/42", nil)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Event not found.", body["message"])
}
