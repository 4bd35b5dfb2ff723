package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/wps-backend-go/internal/domain/wagefile"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWageFileService returns canned results so handler tests exercise only
// request decoding, routing params and response shaping.
type fakeWageFileService struct {
	generateResult wagefile.WageFileResponse
	generateErr    error
	getResult      wagefile.WageFileResponse
	getErr         error
	listResult     []wagefile.WageFileResponse
	listErr        error
	downloadResult wagefile.WageFileDownload
	downloadErr    error

	lastGenerateReq wagefile.GenerateWageFileRequest
}

func (f *fakeWageFileService) Generate(_ context.Context, req wagefile.GenerateWageFileRequest) (wagefile.WageFileResponse, error) {
	f.lastGenerateReq = req
	return f.generateResult, f.generateErr
}

func (f *fakeWageFileService) GetByID(_ context.Context, _ string) (wagefile.WageFileResponse, error) {
	return f.getResult, f.getErr
}

func (f *fakeWageFileService) ListByBatch(_ context.Context, _ string) ([]wagefile.WageFileResponse, error) {
	return f.listResult, f.listErr
}

func (f *fakeWageFileService) Download(_ context.Context, _ string) (wagefile.WageFileDownload, error) {
	return f.downloadResult, f.downloadErr
}

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleWageFileResponse() wagefile.WageFileResponse {
	return wagefile.WageFileResponse{
		ID:          "wf-1",
		BatchID:     "batch-1",
		FileName:    "WAGE_2025-03_20250331.sif",
		RecordCount: 2,
		TotalAmount: decimal.RequireFromString("12250.50"),
		Status:      "generated",
		CreatedAt:   "2025-03-31T12:00:00Z",
	}
}

// ===== GENERATE =====

func TestWageFileHandler_Generate_Success(t *testing.T) {
	svc := &fakeWageFileService{generateResult: sampleWageFileResponse()}
	handler := NewWageFileHandler(svc)

	body, _ := json.Marshal(map[string]string{
		"employer_id":      "1000000001",
		"establishment_id": "2000000002",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/batches/batch-1/wage-files", bytes.NewReader(body))
	req = withURLParams(req, map[string]string{"batchId": "batch-1"})
	w := httptest.NewRecorder()

	handler.Generate(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "WAGE_2025-03_20250331.sif", data["file_name"])
	assert.NotContains(t, resp, "warnings")

	// Path param wins over anything the body might claim.
	assert.Equal(t, "batch-1", svc.lastGenerateReq.BatchID)
	assert.Equal(t, "1000000001", svc.lastGenerateReq.EmployerID)
}

func TestWageFileHandler_Generate_Warnings(t *testing.T) {
	result := sampleWageFileResponse()
	result.Warnings = []string{"employer_id truncated to 10 characters"}
	svc := &fakeWageFileService{generateResult: result}
	handler := NewWageFileHandler(svc)

	body, _ := json.Marshal(map[string]string{
		"employer_id":      "10000000019999",
		"establishment_id": "2000000002",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/batches/batch-1/wage-files", bytes.NewReader(body))
	req = withURLParams(req, map[string]string{"batchId": "batch-1"})
	w := httptest.NewRecorder()

	handler.Generate(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	warnings := resp["warnings"].([]interface{})
	require.Len(t, warnings, 1)
	assert.Equal(t, "employer_id truncated to 10 characters", warnings[0])
}

func TestWageFileHandler_Generate_InvalidJSON(t *testing.T) {
	handler := NewWageFileHandler(&fakeWageFileService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/batches/batch-1/wage-files", strings.NewReader("invalid json"))
	req = withURLParams(req, map[string]string{"batchId": "batch-1"})
	w := httptest.NewRecorder()

	handler.Generate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWageFileHandler_Generate_MissingBatchID(t *testing.T) {
	handler := NewWageFileHandler(&fakeWageFileService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/batches//wage-files", strings.NewReader("{}"))
	req = withURLParams(req, map[string]string{})
	w := httptest.NewRecorder()

	handler.Generate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWageFileHandler_Generate_BatchNotProcessed(t *testing.T) {
	svc := &fakeWageFileService{generateErr: wagefile.ErrBatchNotProcessed}
	handler := NewWageFileHandler(svc)

	body, _ := json.Marshal(map[string]string{
		"employer_id":      "1000000001",
		"establishment_id": "2000000002",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/batches/batch-1/wage-files", bytes.NewReader(body))
	req = withURLParams(req, map[string]string{"batchId": "batch-1"})
	w := httptest.NewRecorder()

	handler.Generate(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.False(t, resp["success"].(bool))
}

// ===== GET / LIST =====

func TestWageFileHandler_GetByID_Success(t *testing.T) {
	svc := &fakeWageFileService{getResult: sampleWageFileResponse()}
	handler := NewWageFileHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wage-files/wf-1", nil)
	req = withURLParams(req, map[string]string{"id": "wf-1"})
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.True(t, resp["success"].(bool))
}

func TestWageFileHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeWageFileService{getErr: wagefile.ErrWageFileNotFound}
	handler := NewWageFileHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wage-files/missing", nil)
	req = withURLParams(req, map[string]string{"id": "missing"})
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWageFileHandler_ListByBatch_Success(t *testing.T) {
	svc := &fakeWageFileService{listResult: []wagefile.WageFileResponse{sampleWageFileResponse()}}
	handler := NewWageFileHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/batches/batch-1/wage-files", nil)
	req = withURLParams(req, map[string]string{"batchId": "batch-1"})
	w := httptest.NewRecorder()

	handler.ListByBatch(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	data := resp["data"].([]interface{})
	assert.Len(t, data, 1)
}

// ===== DOWNLOAD =====

func TestWageFileHandler_Download_Success(t *testing.T) {
	content := "SAL|WPSBNK001|SA12345678901234        |...\n"
	svc := &fakeWageFileService{
		downloadResult: wagefile.WageFileDownload{
			FileName: "WAGE_2025-03_20250331.sif",
			Content:  io.NopCloser(strings.NewReader(content)),
		},
	}
	handler := NewWageFileHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wage-files/wf-1/download", nil)
	req = withURLParams(req, map[string]string{"id": "wf-1"})
	w := httptest.NewRecorder()

	handler.Download(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="WAGE_2025-03_20250331.sif"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, content, w.Body.String())
}

func TestWageFileHandler_Download_ContentMissing(t *testing.T) {
	svc := &fakeWageFileService{downloadErr: wagefile.ErrContentMissing}
	handler := NewWageFileHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wage-files/wf-1/download", nil)
	req = withURLParams(req, map[string]string{"id": "wf-1"})
	w := httptest.NewRecorder()

	handler.Download(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
