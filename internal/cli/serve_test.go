package cli

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biztime/internal/config"
	"biztime/internal/http/middleware"
	"biztime/internal/logger"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.AppConfig{Env: "test", BodyLimitBytes: 1 << 20}
	app, err := newApp(cfg, logger.New(io.Discard, "error", time.UTC), db, prometheus.NewRegistry())
	require.NoError(t, err)
	return app, mock
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func errorOf(body map[string]any) (string, float64) {
	e, _ := body["error"].(map[string]any)
	msg, _ := e["message"].(string)
	status, _ := e["status"].(float64)
	return msg, status
}

func TestApp_GetCompanyWithoutInvoices(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT code, name, description FROM companies WHERE code = $1")).
		WithArgs("CG").
		WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}).
			AddRow("CG", "Cygames", "Maker of gambling games."))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM invoices WHERE comp_code = $1")).
		WithArgs("CG").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, body := do(t, app, http.MethodGet, "/companies/CG", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	assert.Equal(t, map[string]any{
		"company": map[string]any{
			"code":        "CG",
			"name":        "Cygames",
			"description": "Maker of gambling games.",
			"invoices":    []any{},
		},
	}, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_CompanyCodeIsPercentDecoded(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT code, name, description FROM companies WHERE code = $1")).
		WithArgs("ÜB").
		WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}).
			AddRow("ÜB", "Über", nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM invoices WHERE comp_code = $1")).
		WithArgs("ÜB").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM companies WHERE code = $1")).
		WithArgs("A B").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, body := do(t, app, http.MethodGet, "/companies/%C3%9CB", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"company": map[string]any{
			"code":        "ÜB",
			"name":        "Über",
			"description": nil,
			"invoices":    []any{float64(7)},
		},
	}, body)

	resp, body = do(t, app, http.MethodDelete, "/companies/A%20B", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"status": "deleted"}, body)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_CreateCompany(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs("CG", "Cygames", "Maker of gambling games.").
		WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}).
			AddRow("CG", "Cygames", "Maker of gambling games."))

	resp, body := do(t, app, http.MethodPost, "/companies",
		`{"code":"CG","name":"Cygames","description":"Maker of gambling games."}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"company": map[string]any{"code": "CG", "name": "Cygames", "description": "Maker of gambling games."},
	}, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "create company with empty body", method: http.MethodPost, target: "/companies"},
		{name: "create company with blank name", method: http.MethodPost, target: "/companies", body: `{"code":"CG","name":""}`},
		{name: "edit company with null name", method: http.MethodPut, target: "/companies/CG", body: `{"name":null}`},
		{name: "create invoice without amt", method: http.MethodPost, target: "/invoices", body: `{"comp_code":"CG"}`},
		{name: "edit invoice with empty body", method: http.MethodPut, target: "/invoices/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, mock := newTestApp(t)

			resp, body := do(t, app, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			msg, status := errorOf(body)
			assert.Equal(t, "Please make sure you filled in the required fields", msg)
			assert.Equal(t, float64(400), status)
			assert.NoError(t, mock.ExpectationsWereMet(), "no query may run")
		})
	}
}

func TestApp_MalformedJSON(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/companies", `{"code":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	msg, _ := errorOf(body)
	assert.NotEmpty(t, msg)
}

func TestApp_DeleteMissingCompany(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM companies WHERE code = $1")).
		WithArgs("FF").
		WillReturnResult(sqlmock.NewResult(0, 0))

	resp, body := do(t, app, http.MethodDelete, "/companies/FF", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	msg, status := errorOf(body)
	assert.Equal(t, "Company not found", msg)
	assert.Equal(t, float64(404), status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_DeleteInvoice(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM invoices WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, body := do(t, app, http.MethodDelete, "/invoices/3", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"status": "deleted"}, body)
}

func TestApp_CreateInvoice(t *testing.T) {
	app, mock := newTestApp(t)
	added := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO invoices").
		WithArgs("CG", "100").
		WillReturnRows(sqlmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
			AddRow(1, "CG", "100", false, added, nil))

	resp, body := do(t, app, http.MethodPost, "/invoices", `{"comp_code":"CG","amt":100}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := body["invoice"].(map[string]any)
	assert.Equal(t, float64(1), inv["id"])
	assert.Equal(t, "CG", inv["comp_code"])
	assert.Equal(t, float64(100), inv["amt"])
	assert.Equal(t, false, inv["paid"])
	assert.Equal(t, "2024-05-01T10:00:00Z", inv["add_date"])
	assert.Nil(t, inv["paid_date"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_GetInvoiceFlattened(t *testing.T) {
	app, mock := newTestApp(t)
	added := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM invoices AS i JOIN companies AS c").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amt", "paid", "add_date", "paid_date", "code", "name", "description"}).
			AddRow(1, "100", false, added, nil, "CG", "Cygames", nil))

	resp, body := do(t, app, http.MethodGet, "/invoices/1", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := body["invoice"].(map[string]any)
	assert.ElementsMatch(t,
		[]string{"id", "amt", "paid", "add_date", "paid_date", "code", "name", "description"},
		keys(inv))
	assert.Equal(t, "Cygames", inv["name"])
	assert.Nil(t, inv["description"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestApp_NonNumericInvoiceID(t *testing.T) {
	app, mock := newTestApp(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp, body := do(t, app, method, "/invoices/abc", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		msg, _ := errorOf(body)
		assert.Equal(t, "Invoice not found", msg)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_UnknownRoute(t *testing.T) {
	app, _ := newTestApp(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/nope"},
		{http.MethodPatch, "/companies/CG"},
		{http.MethodGet, "/invoices/1/extra"},
	} {
		resp, body := do(t, app, tc.method, tc.target, "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, tc.target)
		msg, status := errorOf(body)
		assert.Equal(t, "Not Found", msg)
		assert.Equal(t, float64(404), status)
	}
}

func TestApp_UnclassifiedStorageError(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("INSERT INTO companies").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "companies_pkey"`))

	resp, body := do(t, app, http.MethodPost, "/companies", `{"code":"CG","name":"Cygames"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	msg, status := errorOf(body)
	assert.Equal(t, `duplicate key value violates unique constraint "companies_pkey"`, msg)
	assert.Equal(t, float64(500), status)
}

func TestApp_OperationalRoutes(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("SELECT code, name FROM companies").
		WillReturnRows(sqlmock.NewRows([]string{"code", "name"}))
	resp, body := do(t, app, http.MethodGet, "/companies", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"companies": []any{}}, body)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `http_requests_total{method="GET",path="/companies",status="200"} 1`)
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "", want: ":8080"},
		{host: "127.0.0.1", want: "127.0.0.1:8080"},
		{host: "::1", want: "[::1]:8080"},
		{host: "api.internal", want: "api.internal:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, listenAddr(&config.AppConfig{AppHost: tt.host, Port: "8080"}))
		})
	}
}
