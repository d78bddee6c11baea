package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/paec-registry/platform/pkg/common/logger"
	"github.com/paec-registry/platform/pkg/common/models"
	"github.com/paec-registry/platform/pkg/records"
	"github.com/paec-registry/platform/pkg/tabular"
)

const maxUploadBytes = 20 << 20

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/exchange/import", h.runImport).Methods(http.MethodPost)
	r.HandleFunc("/exchange/export", h.runExport).Methods(http.MethodGet)
	r.HandleFunc("/exchange/template", h.template).Methods(http.MethodGet)
	r.HandleFunc("/exchange/mapping", h.mapping).Methods(http.MethodGet)
	r.HandleFunc("/exchange/runs/{runID}", h.runStatus).Methods(http.MethodGet)
}

// runImport accepts the sheet either as a multipart upload under the "file"
// field or as a raw CSV request body.
func (h *Handler) runImport(w http.ResponseWriter, r *http.Request) {
	body, err := uploadBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer body.Close()

	sheet, err := tabular.ReadCSV(io.LimitReader(body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unreadable sheet: %v", err))
		return
	}

	summary, err := h.svc.RunImport(r.Context(), sheet, resolveActor(r))
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingKeyColumn), errors.Is(err, ErrTooManyRows):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithField("module", auditModule).Errorf("import failed: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) runExport(w http.ResponseWriter, r *http.Request) {
	format := tabular.FormatAnalysis
	if r.URL.Query().Get("format") == string(tabular.FormatTemplate) {
		format = tabular.FormatTemplate
	}
	var exclude []string
	if v := r.URL.Query().Get("exclude"); v != "" {
		exclude = strings.Split(v, ",")
	}

	sheet, err := h.svc.RunExport(r.Context(), queryFromRequest(r), format, exclude, resolveActor(r))
	if err != nil {
		switch {
		case errors.Is(err, records.ErrNoRecords):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrTooManyRecords):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithField("module", auditModule).Errorf("export failed: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeSheet(w, sheet, ExportFilename(format, time.Now()))
}

func (h *Handler) template(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.svc.RunTemplateExport(r.Context(), resolveActor(r))
	if err != nil {
		logger.WithField("module", auditModule).Errorf("template export failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeSheet(w, sheet, "paec_import_template.csv")
}

func (h *Handler) mapping(w http.ResponseWriter, _ *http.Request) {
	out, err := h.svc.MappingYAML()
	if err != nil {
		logger.WithField("module", auditModule).Errorf("mapping dump failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(out)
}

func (h *Handler) runStatus(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetRunSummary(r.Context(), mux.Vars(r)["runID"])
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.WithField("module", auditModule).Errorf("run lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func uploadBody(r *http.Request) (io.ReadCloser, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return r.Body, nil
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("invalid multipart upload: %v", err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New(`multipart upload has no "file" field`)
	}
	return file, nil
}

func writeSheet(w http.ResponseWriter, sheet *tabular.Sheet, filename string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := sheet.WriteCSV(w); err != nil {
		logger.WithField("module", auditModule).Errorf("sheet write failed: %v", err)
	}
}

func queryFromRequest(r *http.Request) models.RecordQuery {
	q := models.RecordQuery{
		PaecNo: r.URL.Query().Get("paec_no"),
		Name:   r.URL.Query().Get("name"),
		UHID:   r.URL.Query().Get("uhid"),
	}
	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q.FromDate = &t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q.ToDate = &t
		}
	}
	return q
}

func resolveActor(r *http.Request) models.Actor {
	actor := models.Actor{
		ID:       r.Header.Get("X-Actor"),
		CenterID: r.Header.Get("X-Center"),
		Access:   r.Header.Get("X-Access-Scope"),
	}
	if actor.ID == "" {
		actor.ID = "anonymous"
	}
	return actor
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
