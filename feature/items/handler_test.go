package items_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"fiber-extras/core/database"
	"fiber-extras/feature/items"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	feature := items.NewFeature(db, true, zap.NewNop())
	assert.Equal(t, "items", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func postItem(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/items/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func TestItems(t *testing.T) {
	app := setupApp(t)

	data := []map[string]string{
		{"key": "foo", "value": "bar"},
		{"key": "bar", "value": "baz"},
		{"key": "baz", "value": "foo"},
	}

	for _, item := range data {
		body, _ := json.Marshal(item)
		status, raw := postItem(t, app, string(body))
		assert.Equal(t, fiber.StatusCreated, status)
		assert.JSONEq(t, string(body), raw)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/items/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, data, got)
}

func TestItems_Conflict(t *testing.T) {
	app := setupApp(t)

	status, _ := postItem(t, app, `{"key":"foo","value":"bar"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = postItem(t, app, `{"key":"foo","value":"other"}`)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestItems_Validation(t *testing.T) {
	app := setupApp(t)

	status, _ := postItem(t, app, `{"key":"  ","value":"bar"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postItem(t, app, `{`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestItems_Empty(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestFeature_DisabledWithoutDatabase(t *testing.T) {
	assert.False(t, items.NewFeature(nil, false, zap.NewNop()).IsEnabled())
}
