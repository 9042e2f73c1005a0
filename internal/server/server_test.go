package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	return New(zap.NewNop())
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	app := testApp(t)
	resp := get(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestGetYear(t *testing.T) {
	app := testApp(t)
	resp := get(t, app, "/api/v1/years/5784")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	year := decode[YearResponse](t, resp)
	assert.Equal(t, 5784, year.Year)
	assert.True(t, year.Leap)
	assert.Equal(t, 0, year.RoshHashana)
	assert.Equal(t, "Shabbos", year.Weekday)
	assert.Equal(t, "chaser", year.Type)
	assert.Equal(t, 383, year.Length)
	assert.Equal(t, 13, year.Months)
	assert.NotEmpty(t, year.Molad.Display)
}

func TestGetYearInvalid(t *testing.T) {
	app := testApp(t)

	for _, path := range []string{
		"/api/v1/years/0",
		"/api/v1/years/6001",
		"/api/v1/years/abc",
	} {
		resp := get(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		body := decode[map[string]string](t, resp)
		assert.NotEmpty(t, body["error"], path)
	}
}

func TestGetMonth(t *testing.T) {
	app := testApp(t)
	resp := get(t, app, "/api/v1/years/5784/months/13")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	month := decode[MonthResponse](t, resp)
	assert.Equal(t, 5784, month.Year)
	assert.Equal(t, 13, month.Month)
	assert.Equal(t, "Adar Sheini", month.Name)
	assert.Equal(t, 29, month.Length)
	assert.Equal(t, 2, month.RoshChodesh)
	assert.Equal(t, "Monday", month.Weekday)
}

func TestGetMonthInvalid(t *testing.T) {
	app := testApp(t)

	// Adar Sheini does not exist in the non-leap year 5785.
	resp := get(t, app, "/api/v1/years/5785/months/13")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get(t, app, "/api/v1/years/5785/months/0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get(t, app, "/api/v1/years/5785/months/x")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
