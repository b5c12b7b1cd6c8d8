// AngelaMos | 2026
// handler.go

package message

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

const invalidMessageData = "Invalid message data"

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
		r.Get("/contacts", h.Contacts)
		r.Get("/messages", h.Inbox)
		r.Get("/messages/{id}", h.Conversation)
		r.Post("/messages", h.Send)
		r.Patch("/messages/{id}/read", h.MarkRead)
	})
}

func (h *Handler) Contacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.Contacts(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, contacts)
}

func (h *Handler) Inbox(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.Inbox(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, messages)
}

// Conversation lists messages between the caller and the user named by the
// path id.
func (h *Handler) Conversation(w http.ResponseWriter, r *http.Request) {
	otherID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid user ID")
		return
	}

	messages, err := h.service.Conversation(r.Context(), middleware.GetUserID(r.Context()), otherID)
	if err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, messages)
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, invalidMessageData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, invalidMessageData, err)
		return
	}

	m, err := h.service.Send(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		if core.IsConstraintError(err) {
			core.BadRequest(w, invalidMessageData)
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.Created(w, m)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.BadRequest(w, "Invalid message ID")
		return
	}

	m, err := h.service.MarkRead(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Message")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, m)
}
