// AngelaMos | 2026
// handler.go

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	agencyOnly func(http.Handler) http.Handler,
) {
	r.With(agencyOnly).Get("/users", h.ListUsers)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, ToSummaryList(users))
}
