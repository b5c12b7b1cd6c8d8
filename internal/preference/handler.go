// AngelaMos | 2026
// handler.go

package preference

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

const invalidPreferenceData = "Invalid travel preference data"

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

func (h *Handler) RegisterRoutes(r chi.Router, requireSession func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireSession)
		r.Get("/travel-preferences", h.List)
		r.Post("/travel-preferences", h.Create)
		r.Get("/travel-preferences/{id}", h.Get)
		r.Patch("/travel-preferences/{id}", h.Update)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prefs, err := h.service.ListVisible(ctx, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, prefs)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, invalidPreferenceData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, invalidPreferenceData, err)
		return
	}

	p, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeInputError(w, r, err)
		return
	}

	core.Created(w, p)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid preference ID")
		return
	}

	p, err := h.service.GetVisible(ctx, id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Preference")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid preference ID")
		return
	}

	var req UpdatePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, invalidPreferenceData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, invalidPreferenceData, err)
		return
	}

	p, err := h.service.UpdateOwned(r.Context(), id, middleware.GetUserID(r.Context()), req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Preference")
			return
		}
		writeInputError(w, r, err)
		return
	}

	core.OK(w, p)
}

func writeInputError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case core.IsConstraintError(err):
		core.BadRequest(w, invalidPreferenceData)
	case errors.Is(err, core.ErrInvalidInput):
		core.ValidationFailed(w, invalidPreferenceData, err)
	default:
		core.InternalServerError(w, r, err)
	}
}
