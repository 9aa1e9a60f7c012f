package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validasi path param berjalan sebelum query DB, jadi bisa diuji tanpa
// koneksi postgres.
func newSlipParamTestApp() *fiber.App {
	ctl := NewSalarySlipController(nil)
	app := fiber.New()
	app.Get("/salary-slips/:teacherId/:month/:year", ctl.GetTeacherSalarySlip)
	return app
}

func getSlip(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func TestGetTeacherSalarySlip_RejectsNonUUIDTeacherID(t *testing.T) {
	app := newSlipParamTestApp()
	for _, bad := range []string{"bukan-uuid", "123", "guru-piano"} {
		resp := getSlip(t, app, "/salary-slips/"+bad+"/6/2024")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "teacherId %q", bad)
	}
}

func TestGetTeacherSalarySlip_RejectsInvalidPeriod(t *testing.T) {
	app := newSlipParamTestApp()
	teacherID := uuid.New().String()

	for _, path := range []string{
		"/salary-slips/" + teacherID + "/0/2024",
		"/salary-slips/" + teacherID + "/13/2024",
		"/salary-slips/" + teacherID + "/juni/2024",
		"/salary-slips/" + teacherID + "/6/dua-ribu",
	} {
		resp := getSlip(t, app, path)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}
