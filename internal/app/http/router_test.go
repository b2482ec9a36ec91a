package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kruvl/gloria-proyect/internal/app/config"
	pdfgen "github.com/kruvl/gloria-proyect/internal/domain/quote/pdf/gofpdf"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/store"
	"github.com/kruvl/gloria-proyect/internal/infra/kv"
)

const testToken = "secreto"

func newTestServer(t *testing.T, backend kv.Store) *httptest.Server {
	t.Helper()
	cfg := config.Config{HTTPAddr: ":0", InternalToken: testToken, ExportDir: t.TempDir()}
	srv := httptest.NewServer(NewRouter(cfg, store.New(backend), pdfgen.New()))
	t.Cleanup(srv.Close)
	return srv
}

const validQuote = `{
	"date": "2024-01-01",
	"reference": "Proyecto A",
	"tax_percent": "19",
	"items": [
		{"description": "Tornillos", "quantity": "10", "unit_price": "1000"}
	]
}`

func do(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("X-Internal-Token", testToken)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthIsOpen(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())
	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestQuotesRequireToken(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())
	resp, err := srv.Client().Get(srv.URL + "/v1/quotes")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPreview(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())
	resp := do(t, srv, http.MethodPost, "/v1/quotes/preview", validQuote)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "$10.000", body["subtotal"])
	assert.Equal(t, "$1.900", body["tax"])
	assert.Equal(t, "$11.900", body["total"])
}

func TestExportPDF(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())
	resp := do(t, srv, http.MethodPost, "/v1/quotes/export", validQuote)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("X-Export-Path"), "cotizacion-proyecto-a-")

	buf := make([]byte, 4)
	_, err := io.ReadFull(resp.Body, buf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(buf))
}

func TestExportRejectsInvalidQuote(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())
	resp := do(t, srv, http.MethodPost, "/v1/quotes/export",
		`{"date":"2024-01-01","reference":"  ","items":[{"description":"x","quantity":"0","unit_price":"0"}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// reference fails before any item rule
	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "referencia")
}

func TestExportRejectsEmptyItems(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())
	resp := do(t, srv, http.MethodPost, "/v1/quotes/export",
		`{"date":"2024-01-01","reference":"Proyecto A","items":[]}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "ítem")
}

func TestSaveListLoad(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())

	resp := do(t, srv, http.MethodPost, "/v1/quotes", validQuote)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	saved := decodeBody(t, resp)
	key, _ := saved["key"].(string)
	require.NotEmpty(t, key)

	resp = do(t, srv, http.MethodGet, "/v1/quotes", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody(t, resp)
	quotes, _ := list["quotes"].([]any)
	require.Len(t, quotes, 1)

	resp = do(t, srv, http.MethodGet, "/v1/quotes/"+key, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loaded := decodeBody(t, resp)
	assert.Equal(t, "Proyecto A", loaded["reference"])
	assert.Equal(t, "19", loaded["tax_percent"])
	items, _ := loaded["items"].([]any)
	require.Len(t, items, 1)
	item, _ := items[0].(map[string]any)
	assert.Equal(t, "Tornillos", item["description"])
	assert.Equal(t, "$10.000", item["line_total"])
}

func TestSaveRejectsInvalidQuote(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())
	resp := do(t, srv, http.MethodPost, "/v1/quotes", `{"reference":"sin fecha","items":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoadUnknownKey(t *testing.T) {
	srv := newTestServer(t, kv.NewMemory())
	resp := do(t, srv, http.MethodGet, "/v1/quotes/quote:404", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type brokenKV struct{}

func (brokenKV) Set(context.Context, string, string) error { return errors.New("boom") }
func (brokenKV) Keys(context.Context) ([]string, error)    { return nil, errors.New("boom") }
func (brokenKV) GetMulti(context.Context, []string) (map[string]string, error) {
	return nil, errors.New("boom")
}

func TestStoreFailuresAreVisible(t *testing.T) {
	srv := newTestServer(t, brokenKV{})

	resp := do(t, srv, http.MethodGet, "/v1/quotes", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode,
		"list failures surface instead of degrading to an empty list")

	resp = do(t, srv, http.MethodPost, "/v1/quotes", validQuote)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
