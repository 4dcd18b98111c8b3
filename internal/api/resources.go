package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/solarcodion/code-challenge/internal/resource"
)

// ResourceHandler provides the CRUD endpoints for stored resources.
type ResourceHandler struct {
	resources *resource.Service
}

// NewResourceHandler creates a new resource CRUD handler.
func NewResourceHandler(resources *resource.Service) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// ListResources handles GET /api/v1/resources with optional category,
// status and name filters.
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := resource.Filter{
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Name:     q.Get("name"),
	}

	resources, err := h.resources.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list resources", "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if resources == nil {
		resources = []resource.Resource{}
	}
	writeJSON(w, http.StatusOK, listEnvelope{Success: true, Count: len(resources), Data: resources})
}

// GetResource handles GET /api/v1/resources/{id}.
func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.resources.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		slog.Error("failed to get resource", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: res})
}

// CreateResource handles POST /api/v1/resources.
func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var params resource.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.resources.Create(r.Context(), params)
	if err != nil {
		var verr *resource.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Messages)
			return
		}
		slog.Error("failed to create resource", "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: res})
}

// UpdateResource handles PUT /api/v1/resources/{id}.
func (h *ResourceHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var params resource.UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.resources.Update(r.Context(), id, params)
	if err != nil {
		var verr *resource.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Messages)
		case errors.Is(err, resource.ErrNotFound):
			writeError(w, http.StatusNotFound, "Resource not found")
		default:
			slog.Error("failed to update resource", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: res})
}

// DeleteResource handles DELETE /api/v1/resources/{id}.
func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.resources.Delete(r.Context(), id); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		slog.Error("failed to delete resource", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: struct{}{}})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resource id")
		return 0, false
	}
	return id, true
}
