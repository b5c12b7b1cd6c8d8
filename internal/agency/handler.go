// AngelaMos | 2026
// handler.go

package agency

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

const invalidAgencyData = "Invalid agency data"

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
	r.Get("/agencies", h.List)
	r.Get("/agencies/{id}", h.Get)
	r.With(requireSession).Post("/agencies", h.Create)
	r.With(requireSession).Get("/my-agency", h.GetMine)
	r.With(agencyOnly).Patch("/my-agency", h.UpdateMine)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, agencies)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid agency ID")
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Agency")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, a)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, invalidAgencyData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, invalidAgencyData, err)
		return
	}

	a, err := h.service.Register(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAgencyExists):
			core.BadRequest(w, "User already has an agency profile")
		case core.IsConstraintError(err):
			core.BadRequest(w, invalidAgencyData)
		default:
			core.InternalServerError(w, r, err)
		}
		return
	}

	core.Created(w, a)
}

func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.GetByUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Agency profile")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, a)
}

func (h *Handler) UpdateMine(w http.ResponseWriter, r *http.Request) {
	var req UpdateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, invalidAgencyData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, invalidAgencyData, err)
		return
	}

	a, err := h.service.UpsertMine(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		if errors.Is(err, ErrCompanyNameMissing) || core.IsConstraintError(err) {
			core.BadRequest(w, invalidAgencyData)
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, a)
}
