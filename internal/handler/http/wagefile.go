package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cmlabs-hris/wps-backend-go/internal/domain/wagefile"
	"github.com/cmlabs-hris/wps-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WageFileHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByBatch(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type wageFileHandlerImpl struct {
	wageFileService wagefile.WageFileService
}

func NewWageFileHandler(wageFileService wagefile.WageFileService) WageFileHandler {
	return &wageFileHandlerImpl{wageFileService: wageFileService}
}

func (h *wageFileHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchId")
	if batchID == "" {
		response.BadRequest(w, "Batch ID is required", nil)
		return
	}

	var req wagefile.GenerateWageFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.BatchID = batchID

	result, err := h.wageFileService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Truncation warnings are silent-but-risky data loss in bank-registered
	// identifiers; they must reach the operator, not just the logs.
	if len(result.Warnings) > 0 {
		response.CreatedWithWarnings(w, "Wage file generated", result, result.Warnings)
		return
	}
	response.Created(w, "Wage file generated", result)
}

func (h *wageFileHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Wage file ID is required", nil)
		return
	}

	result, err := h.wageFileService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wageFileHandlerImpl) ListByBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchId")
	if batchID == "" {
		response.BadRequest(w, "Batch ID is required", nil)
		return
	}

	result, err := h.wageFileService.ListByBatch(r.Context(), batchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wageFileHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Wage file ID is required", nil)
		return
	}

	download, err := h.wageFileService.Download(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer download.Content.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.FileName))
	if _, err := io.Copy(w, download.Content); err != nil {
		// Headers are already sent; nothing left to do but drop the
		// connection.
		return
	}
}
