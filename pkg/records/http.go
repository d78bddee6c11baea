package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/paec-registry/platform/pkg/common/logger"
	"github.com/paec-registry/platform/pkg/common/models"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/records", h.create).Methods(http.MethodPost)
	r.HandleFunc("/records", h.list).Methods(http.MethodGet)
	r.HandleFunc("/records/{paecNo}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/records/{paecNo}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/records/{paecNo}", h.remove).Methods(http.MethodDelete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var rec models.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Create(r.Context(), &rec, resolveActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), mux.Vars(r)["paecNo"], resolveActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context(), queryFromRequest(r), resolveActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var rec models.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["paecNo"], &rec, resolveActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SoftDelete(r.Context(), mux.Vars(r)["paecNo"], resolveActor(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
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
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Limit = n
		}
	}
	return q
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoRecords):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateKey):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrMissingKey):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.WithField("module", auditModule).Errorf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// resolveActor reads the caller identity set by the auth layer in front of
// this service. A request with no identity headers gets full read scope and
// an anonymous actor id.
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
