package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/pet-health-journal/internal/service/export"
)

// exportService defines the minimal interface needed by ExportHandler.
type exportService interface {
	AllJSON(ctx context.Context) ([]byte, error)
	Files(ctx context.Context, subject string) ([]export.File, error)
	Archive(ctx context.Context, subject string) ([]string, error)
}

// ExportHandler serves journal downloads.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

// Register mounts the export routes on mux.
func (h *ExportHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/export/all", h.All)
	mux.HandleFunc("GET /api/subjects/{subject}/export/{kind}", scoped(h.Download))
	mux.HandleFunc("POST /api/subjects/{subject}/export/archive", scoped(h.Archive))
}

// All handles GET /api/export/all.
func (h *ExportHandler) All(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.AllJSON(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	w.Write(body) //nolint:errcheck
}

// Download handles GET /api/subjects/{subject}/export/{kind} where kind is
// "json" or "csv". The file is sent as an attachment under its export name.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	idx := map[string]int{"json": 0, "csv": 1}
	i, ok := idx[r.PathValue("kind")]
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	files, err := h.svc.Files(r.Context(), r.PathValue("subject"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	f := files[i]

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(f.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Body)))
	w.WriteHeader(http.StatusOK)
	w.Write(f.Body) //nolint:errcheck
}

// Archive handles POST /api/subjects/{subject}/export/archive.
func (h *ExportHandler) Archive(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Archive(r.Context(), r.PathValue("subject"))
	if errors.Is(err, export.ErrArchiveDisabled) {
		writeError(w, http.StatusNotImplemented, err.Error())
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"files": names})
}
