// AngelaMos | 2026
// handler.go

package destination

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/seed", h.Seed)
		r.Get("/{id}", h.Get)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, destinations)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid destination ID")
		return
	}

	d, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Destination")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, d)
}

func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.Seed(r.Context())
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "destination seed requested", "inserted", n)
	core.Message(w, http.StatusOK, "Destinations seeded successfully")
}
