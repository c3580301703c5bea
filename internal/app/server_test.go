package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto_portal/internal/config"
	"moto_portal/internal/spreadsheet"
	"moto_portal/internal/testutil"
)

const testPassword = "secret-pass"

type testServer struct {
	router    http.Handler
	uploadDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Server.Debug = false
	cfg.Auth.AdminPassword = testPassword
	cfg.Storage.BasePath = t.TempDir()

	router, err := SetupRouter(cfg, testutil.NewDB(t))
	require.NoError(t, err)

	return &testServer{router: router, uploadDir: cfg.Storage.BasePath}
}

func (ts *testServer) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// sendJSON - запрос с JSON-телом (body == nil - без тела)
func (ts *testServer) sendJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(req, token)
}

// sendFile - multipart-запрос с файлом в поле "file" и дополнительными полями
func (ts *testServer) sendFile(t *testing.T, path, token, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return ts.do(req, token)
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()
	rec := ts.sendJSON(t, http.MethodPost, "/api/admin/login", "", map[string]string{"password": testPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	require.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, int64(30*60), token.ExpiresIn)
	return token.AccessToken
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error.Code
}

func TestAdminAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.sendJSON(t, http.MethodPost, "/api/admin/login", "", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))

	rec = ts.sendJSON(t, http.MethodGet, "/api/admin/models", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.sendJSON(t, http.MethodGet, "/api/admin/models", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))

	token := ts.login(t)
	rec = ts.sendJSON(t, http.MethodGet, "/api/admin/models", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// алиас входа
	rec = ts.sendJSON(t, http.MethodPost, "/api/admin/auth/login", "", map[string]string{"password": testPassword})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestModelPhotoFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rec := ts.sendJSON(t, http.MethodPost, "/api/admin/models", token, map[string]interface{}{"name": "Tourer 800"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var model struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &model))

	content := []byte("\x89PNG fake image bytes")
	rec = ts.sendFile(t, fmt.Sprintf("/api/admin/models/%d/photos", model.ID), token, "front.png", content, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var photo struct {
		ID       uint   `json:"id"`
		FilePath string `json:"file_path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &photo))

	stored, err := os.ReadFile(filepath.Join(ts.uploadDir, filepath.FromSlash(photo.FilePath)))
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	rec = ts.sendFile(t, fmt.Sprintf("/api/admin/models/%d/photos", model.ID), token, "virus.exe", content, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_EXTENSION", errorCode(t, rec))

	rec = ts.sendJSON(t, http.MethodPut, fmt.Sprintf("/api/admin/photos/%d/primary", photo.ID), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.sendJSON(t, http.MethodGet, fmt.Sprintf("/api/models/%d", model.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), photo.FilePath)
	assert.Contains(t, rec.Body.String(), `"is_primary":true`)

	rec = ts.sendJSON(t, http.MethodDelete, fmt.Sprintf("/api/admin/models/%d", model.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	_, err = os.Stat(filepath.Join(ts.uploadDir, filepath.FromSlash(photo.FilePath)))
	assert.True(t, os.IsNotExist(err))

	rec = ts.sendJSON(t, http.MethodGet, fmt.Sprintf("/api/models/%d", model.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSpecImportExportEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rec := ts.sendJSON(t, http.MethodPost, "/api/admin/models", token, map[string]interface{}{"name": "Enduro"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var model struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &model))

	var book bytes.Buffer
	require.NoError(t, spreadsheet.Write(&book, "Sheet1", &spreadsheet.Table{
		Header: []string{"spec_name", "spec_value", "spec_unit"},
		Rows: [][]string{
			{"Power", "45", "hp"},
			{"Weight", "120", "kg"},
		},
	}))

	importPath := fmt.Sprintf("/api/admin/models/%d/specs/import", model.ID)
	rec = ts.sendFile(t, importPath, token, "specs.xlsx", book.Bytes(), map[string]string{"replace_existing": "false"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"imported":2,"updated":0,"total_processed":2}`, rec.Body.String())

	rec = ts.sendFile(t, importPath, token, "specs.xlsx", []byte("garbage"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "IMPORT_FORMAT_ERROR", errorCode(t, rec))

	rec = ts.sendJSON(t, http.MethodGet, fmt.Sprintf("/api/admin/models/%d/specs/export", model.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), fmt.Sprintf("model_%d_specs.xlsx", model.ID))

	table, err := spreadsheet.Read(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)

	rec = ts.sendJSON(t, http.MethodGet, fmt.Sprintf("/api/admin/models/%d/specs/imports", model.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var logs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	assert.Len(t, logs, 1)
}

func TestSectionVisibilityEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rec := ts.sendJSON(t, http.MethodGet, "/api/news", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.sendJSON(t, http.MethodPut, "/api/admin/sections/news/visibility", token, map[string]bool{"is_visible": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.sendJSON(t, http.MethodGet, "/api/sections/visibility", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"news":false,"regulations":true,"employees":true}`, rec.Body.String())

	rec = ts.sendJSON(t, http.MethodGet, "/api/news", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SECTION_HIDDEN", errorCode(t, rec))

	rec = ts.sendJSON(t, http.MethodPut, "/api/admin/sections/unknown/visibility", token, map[string]bool{"is_visible": false})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.sendJSON(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
