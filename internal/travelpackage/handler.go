// AngelaMos | 2026
// handler.go

package travelpackage

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/middleware"
)

const invalidPackageData = "Invalid package data"

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireSession, agencyOnly func(http.Handler) http.Handler,
) {
	r.With(requireSession).Get("/travel-preferences/{id}/packages", h.ListForPreference)
	r.With(agencyOnly).Get("/agency-packages", h.ListMine)
	r.With(agencyOnly).Post("/travel-packages", h.Create)
	r.With(agencyOnly).Patch("/travel-packages/{id}", h.Update)
}

func (h *Handler) ListForPreference(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid preference ID")
		return
	}

	packages, err := h.service.ListForPreference(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Preference")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, packages)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	core.OK(w, packages)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, invalidPackageData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, invalidPackageData, err)
		return
	}

	p, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	core.Created(w, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid package ID")
		return
	}

	var req UpdatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, invalidPackageData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, invalidPackageData, err)
		return
	}

	p, err := h.service.UpdateMine(r.Context(), id, middleware.GetUserID(r.Context()), req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Package")
			return
		}
		writeError(w, r, err)
		return
	}

	core.OK(w, p)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNoAgency):
		core.NotFound(w, "Agency")
	case core.IsConstraintError(err):
		core.BadRequest(w, invalidPackageData)
	default:
		core.InternalServerError(w, r, err)
	}
}
