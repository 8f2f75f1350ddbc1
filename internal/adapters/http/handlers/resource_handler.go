package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

// ResourceHandler exposes one owned resource (tasks or places) as a REST
// collection.
type ResourceHandler struct {
	svc ports.ResourceService
}

// NewResourceHandler creates a ResourceHandler backed by svc.
func NewResourceHandler(svc ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// List handles GET /{collection}.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, records)
}

// Create handles POST /{collection}.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Create(r.Context(), body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, rec)
}

// Get handles GET /{collection}/{id}.
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), idParam(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rec)
}

// Update handles PATCH /{collection}/{id}.
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Update(r.Context(), idParam(r), body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rec)
}

// Delete handles DELETE /{collection}/{id}.
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), idParam(r)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
