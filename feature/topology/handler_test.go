package topology

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"topology-manager/core/reconcile"
	"topology-manager/core/storage/mocks"
	"topology-manager/feature/topology/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *gorm.DB) {
	t.Helper()
	svc, client, db := setupService(t)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, client, db
}

func TestHandleCreateEvent(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/topology/events", strings.NewReader(`{"name":"nightly"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var ev models.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ev))
	assert.Equal(t, "nightly", ev.Name)
	assert.Positive(t, ev.IdxEvent)
}

func TestHandleSnapshot(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		body   string
		status int
	}{
		{"valid snapshot", "", sw1, fiber.StatusOK},
		{"missing host", "", `{"misc":{}}`, fiber.StatusBadRequest},
		{"invalid json", "", `{`, fiber.StatusBadRequest},
		{"invalid event", "?event=abc", sw1, fiber.StatusBadRequest},
		{"unknown event", "?event=42", sw1, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := setupTestApp(t)

			req := httptest.NewRequest("POST", "/topology/snapshots"+tt.query, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHandleSnapshot_Summary(t *testing.T) {
	app, _, db := setupTestApp(t)

	req := httptest.NewRequest("POST", "/topology/snapshots", strings.NewReader(sw1))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary reconcile.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, "sw1", summary.Host)
	assert.Positive(t, summary.EventID)
	assert.Equal(t, 1, summary.Device.Inserted)

	var ev models.Event
	require.NoError(t, db.First(&ev, summary.EventID).Error)
	assert.Equal(t, "api:sw1", ev.Name)
}

func TestHandleIngest(t *testing.T) {
	app, client, _ := setupTestApp(t)

	client.On("ListObjects", mock.Anything, "switchmap", mock.Anything).
		Return(mocks.Objects("snapshots/sw1.json", "snapshots/sw2.json"))
	client.On("GetObject", mock.Anything, "switchmap", "snapshots/sw1.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(sw1)), nil)
	client.On("GetObject", mock.Anything, "switchmap", "snapshots/sw2.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`not json`)), nil)

	req := httptest.NewRequest("POST", "/topology/ingest", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report reconcile.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 2)
	assert.Contains(t, report.Outcomes[1].Error, "invalid snapshot snapshots/sw2.json")
}

func TestHandleImportOUI(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/topology/oui", strings.NewReader("00000c\tCisco\naabbcc\tExample\n"))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body["imported"])
}
